package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/spacesedan/mooddecode/internal/monitoring"
)

const (
	CapabilityMood    = "mood"
	CapabilityCrisis  = "crisis"
	CapabilitySummary = "summary"
)

// Service validates input, delegates to the configured providers and
// normalizes what they return. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	mood    MoodAnalyzer
	crisis  CrisisDetector
	summary Summarizer

	providers     map[string]string
	maxTextLength int
}

type Option func(*Service)

// WithProviderNames labels inference metrics with the provider serving
// each capability.
func WithProviderNames(mood, crisis, summary string) Option {
	return func(s *Service) {
		s.providers[CapabilityMood] = mood
		s.providers[CapabilityCrisis] = crisis
		s.providers[CapabilitySummary] = summary
	}
}

func WithMaxTextLength(n int) Option {
	return func(s *Service) {
		s.maxTextLength = n
	}
}

func NewService(mood MoodAnalyzer, crisis CrisisDetector, summary Summarizer, opts ...Option) *Service {
	s := &Service{
		mood:    mood,
		crisis:  crisis,
		summary: summary,
		providers: map[string]string{
			CapabilityMood:    "unknown",
			CapabilityCrisis:  "unknown",
			CapabilitySummary: "unknown",
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate rejects empty, whitespace-only and oversized text.
func (s *Service) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text must not be empty", ErrValidation)
	}
	if s.maxTextLength > 0 && utf8.RuneCountInString(text) > s.maxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", ErrValidation, s.maxTextLength)
	}
	return nil
}

func (s *Service) AnalyzeMood(ctx context.Context, text string) (models.MoodResult, error) {
	if err := s.Validate(text); err != nil {
		return models.MoodResult{}, err
	}

	var est MoodEstimate
	err := s.observe(CapabilityMood, func() (err error) {
		est, err = s.mood.AnalyzeMood(ctx, text)
		return err
	})
	if err != nil {
		return models.MoodResult{}, err
	}

	result, err := NormalizeMood(est)
	if err != nil {
		slog.Warn("[AnalysisService] Unusable mood reply",
			slog.String("provider", s.providers[CapabilityMood]),
			slog.String("error", err.Error()))
	}
	return result, err
}

func (s *Service) DetectCrisis(ctx context.Context, text string) (models.CrisisResult, error) {
	if err := s.Validate(text); err != nil {
		return models.CrisisResult{}, err
	}

	var est CrisisEstimate
	err := s.observe(CapabilityCrisis, func() (err error) {
		est, err = s.crisis.DetectCrisis(ctx, text)
		return err
	})
	if err != nil {
		return models.CrisisResult{}, err
	}

	result, err := NormalizeCrisis(est)
	if err != nil {
		slog.Warn("[AnalysisService] Unusable crisis reply",
			slog.String("provider", s.providers[CapabilityCrisis]),
			slog.String("error", err.Error()))
		return result, err
	}

	if result.CrisisDetected {
		slog.Warn("[AnalysisService] Crisis indicators detected",
			slog.String("severity", string(result.Severity)),
			slog.Float64("confidence", result.Confidence))
	}
	return result, nil
}

func (s *Service) Summarize(ctx context.Context, text string) (models.SummaryResult, error) {
	if err := s.Validate(text); err != nil {
		return models.SummaryResult{}, err
	}

	var summary string
	err := s.observe(CapabilitySummary, func() (err error) {
		summary, err = s.summary.Summarize(ctx, text)
		return err
	})
	if err != nil {
		return models.SummaryResult{}, err
	}

	return NormalizeSummary(summary)
}

// observe times a provider call, records the outcome and wraps any
// failure as ErrUpstreamInference.
func (s *Service) observe(capability string, call func() error) error {
	provider := s.providers[capability]
	start := time.Now()

	err := call()
	elapsed := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	monitoring.ObserveInference(capability, provider, outcome, elapsed)

	if err != nil {
		slog.Error("[AnalysisService] Inference call failed",
			slog.String("capability", capability),
			slog.String("provider", provider),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s: %w", ErrUpstreamInference, capability, err)
	}
	return nil
}
