package analysis

import (
	"fmt"

	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/clients"
	"github.com/spacesedan/mooddecode/internal/monitoring"
)

// Gateway is the wired Service plus what the process needs to run and
// tear it down.
type Gateway struct {
	Service *Service
	// Pingers holds a health probe per capability whose provider has one.
	Pingers map[string]monitoring.Pinger
	closers []func() error
}

func (g *Gateway) Close() error {
	var firstErr error
	for _, c := range g.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Build selects a provider per capability from cfg.
func Build(cfg *config.Config) (*Gateway, error) {
	g := &Gateway{Pingers: make(map[string]monitoring.Pinger)}

	var (
		llm   *LLMProvider
		hf    *clients.HuggingFaceClient
		local = NewLocalProvider()
	)
	if cfg.UsesProvider(config.ProviderLLM) {
		llm = NewLLMProvider(clients.NewLLMClient(cfg.LLM))
	}
	if cfg.UsesProvider(config.ProviderHuggingFace) {
		hf = clients.NewHuggingFaceClient(cfg.HuggingFace)
	}

	var mood MoodAnalyzer
	switch cfg.MoodProvider {
	case config.ProviderLLM:
		mood = llm
		g.Pingers[CapabilityMood] = llm
	case config.ProviderHuggingFace:
		a := NewHFMoodAnalyzer(hf, cfg.HuggingFace.EmotionModel)
		mood = a
		g.Pingers[CapabilityMood] = a
	case config.ProviderONNX:
		a, err := NewONNXMoodAnalyzer(cfg.ONNX)
		if err != nil {
			return nil, fmt.Errorf("mood provider: %w", err)
		}
		mood = a
		g.closers = append(g.closers, a.Close)
	case config.ProviderLocal:
		mood = local
	default:
		return nil, fmt.Errorf("unknown mood provider %q", cfg.MoodProvider)
	}

	var crisis CrisisDetector
	switch cfg.CrisisProvider {
	case config.ProviderLLM:
		crisis = llm
		g.Pingers[CapabilityCrisis] = llm
	case config.ProviderHuggingFace:
		d := NewHFCrisisDetector(hf, cfg.HuggingFace.CrisisModel)
		crisis = d
		g.Pingers[CapabilityCrisis] = d
	case config.ProviderLocal:
		crisis = local
	default:
		return nil, fmt.Errorf("unknown crisis provider %q", cfg.CrisisProvider)
	}

	var summary Summarizer
	switch cfg.SummaryProvider {
	case config.ProviderLLM:
		summary = llm
		g.Pingers[CapabilitySummary] = llm
	case config.ProviderHuggingFace:
		s := NewHFSummarizer(hf, cfg.HuggingFace.SummaryModel)
		summary = s
		g.Pingers[CapabilitySummary] = s
	case config.ProviderLocal:
		summary = local
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.SummaryProvider)
	}

	g.Service = NewService(mood, crisis, summary,
		WithProviderNames(cfg.MoodProvider, cfg.CrisisProvider, cfg.SummaryProvider),
		WithMaxTextLength(cfg.MaxTextLength),
	)
	return g, nil
}
