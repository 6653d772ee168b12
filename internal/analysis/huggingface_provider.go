package analysis

import (
	"context"
	"errors"

	"github.com/spacesedan/mooddecode/internal/models"
)

// HFInference is the slice of clients.HuggingFaceClient the providers use.
type HFInference interface {
	ClassifyText(ctx context.Context, model, text string) ([]models.HFLabelScore, error)
	ZeroShot(ctx context.Context, model, text string, labels []string, template string) (models.HFZeroShotResponse, error)
	Summarize(ctx context.Context, model, text string) (string, error)
	Ping(ctx context.Context, model string) error
}

type hfModel struct {
	client HFInference
	model  string
}

func (m hfModel) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, m.model)
}

// HFMoodAnalyzer uses a text-classification emotion model; labels such as
// "joy" or "anger" are folded onto the emotion set during normalization.
type HFMoodAnalyzer struct{ hfModel }

func NewHFMoodAnalyzer(client HFInference, model string) *HFMoodAnalyzer {
	return &HFMoodAnalyzer{hfModel{client: client, model: model}}
}

func (a *HFMoodAnalyzer) AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error) {
	labels, err := a.client.ClassifyText(ctx, a.model, text)
	if err != nil {
		return MoodEstimate{}, err
	}

	if len(labels) == 0 {
		return MoodEstimate{}, errors.New("emotion model returned no labels")
	}

	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return MoodEstimate{Label: best.Label, Confidence: best.Score}, nil
}

const crisisHypothesisTemplate = "The writer of this text is expressing {}."

// Zero-shot hypotheses, one per severity tier.
var crisisHypotheses = []struct {
	label    string
	severity models.Severity
}{
	{"no emotional distress", models.SeverityNone},
	{"mild distress or sadness", models.SeverityLow},
	{"serious distress or hopelessness", models.SeverityModerate},
	{"suicidal thoughts or self-harm", models.SeverityHigh},
}

func severityForHypothesis(label string) (models.Severity, bool) {
	for _, h := range crisisHypotheses {
		if h.label == label {
			return h.severity, true
		}
	}
	return "", false
}

// HFCrisisDetector runs an NLI model in zero-shot mode over one hypothesis
// per severity tier and takes the best scoring tier.
type HFCrisisDetector struct{ hfModel }

func NewHFCrisisDetector(client HFInference, model string) *HFCrisisDetector {
	return &HFCrisisDetector{hfModel{client: client, model: model}}
}

func (d *HFCrisisDetector) DetectCrisis(ctx context.Context, text string) (CrisisEstimate, error) {
	labels := make([]string, 0, len(crisisHypotheses))
	for _, h := range crisisHypotheses {
		labels = append(labels, h.label)
	}

	resp, err := d.client.ZeroShot(ctx, d.model, text, labels, crisisHypothesisTemplate)
	if err != nil {
		return CrisisEstimate{}, err
	}

	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return CrisisEstimate{}, errors.New("zero-shot reply has mismatched labels and scores")
	}

	bestIdx := 0
	for i := range resp.Scores {
		if resp.Scores[i] > resp.Scores[bestIdx] {
			bestIdx = i
		}
	}

	severity, ok := severityForHypothesis(resp.Labels[bestIdx])
	if !ok {
		return CrisisEstimate{}, errors.New("zero-shot reply contained an unknown label")
	}

	return CrisisEstimate{
		Detected:   severity != models.SeverityNone,
		Severity:   string(severity),
		Confidence: resp.Scores[bestIdx],
	}, nil
}

type HFSummarizer struct{ hfModel }

func NewHFSummarizer(client HFInference, model string) *HFSummarizer {
	return &HFSummarizer{hfModel{client: client, model: model}}
}

func (s *HFSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.client.Summarize(ctx, s.model, text)
}
