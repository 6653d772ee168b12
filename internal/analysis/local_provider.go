package analysis

import (
	"context"

	"github.com/spacesedan/mooddecode/internal/sentiment"
)

// LocalProvider runs in-process lexicon models. It needs no network and
// is meant for development and as a fallback.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (LocalProvider) AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error) {
	if err := ctx.Err(); err != nil {
		return MoodEstimate{}, err
	}
	label, confidence := sentiment.ClassifyEmotion(text)
	return MoodEstimate{Label: label, Confidence: confidence}, nil
}

func (LocalProvider) DetectCrisis(ctx context.Context, text string) (CrisisEstimate, error) {
	if err := ctx.Err(); err != nil {
		return CrisisEstimate{}, err
	}
	severity, confidence := sentiment.AssessCrisis(text)
	return CrisisEstimate{
		Detected:   severity != "none",
		Severity:   severity,
		Confidence: confidence,
	}, nil
}

func (LocalProvider) Summarize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return sentiment.Summarize(text), nil
}
