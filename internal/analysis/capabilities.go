package analysis

import "context"

// MoodEstimate is a provider's raw emotion call, before normalization.
type MoodEstimate struct {
	Label      string
	Confidence float64
}

// CrisisEstimate is a provider's raw risk call, before normalization.
type CrisisEstimate struct {
	Detected   bool
	Severity   string
	Confidence float64
}

type MoodAnalyzer interface {
	AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error)
}

type CrisisDetector interface {
	DetectCrisis(ctx context.Context, text string) (CrisisEstimate, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
