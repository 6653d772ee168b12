package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/spacesedan/mooddecode/internal/models"
)

var emotionSynonyms = map[string]models.Emotion{
	"joy":       models.EmotionHappy,
	"joyful":    models.EmotionHappy,
	"happiness": models.EmotionHappy,
	"positive":  models.EmotionHappy,
	"sadness":   models.EmotionSad,
	"negative":  models.EmotionSad,
	"anger":     models.EmotionAngry,
	"fearful":   models.EmotionFear,
	"scared":    models.EmotionFear,
	"afraid":    models.EmotionFear,
	"surprised": models.EmotionSurprise,
	"disgusted": models.EmotionDisgust,
	"calm":      models.EmotionNeutral,
}

var severitySynonyms = map[string]models.Severity{
	"medium":   models.SeverityModerate,
	"severe":   models.SeverityHigh,
	"critical": models.SeverityHigh,
	"minimal":  models.SeverityLow,
	"mild":     models.SeverityLow,
}

// ClampConfidence forces a score into [0,1]; NaN becomes 0.
func ClampConfidence(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ParseEmotion(label string) (models.Emotion, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if e := models.Emotion(key); e.Valid() {
		return e, nil
	}
	if e, ok := emotionSynonyms[key]; ok {
		return e, nil
	}
	return "", fmt.Errorf("%w: unrecognized emotion label %q", ErrUpstreamInference, label)
}

func ParseSeverity(label string) (models.Severity, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if s := models.Severity(key); s.Valid() {
		return s, nil
	}
	if s, ok := severitySynonyms[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: unrecognized severity %q", ErrUpstreamInference, label)
}

func NormalizeMood(est MoodEstimate) (models.MoodResult, error) {
	emotion, err := ParseEmotion(est.Label)
	if err != nil {
		return models.MoodResult{}, err
	}
	return models.MoodResult{
		Emotion:    emotion,
		Confidence: ClampConfidence(est.Confidence),
	}, nil
}

// NormalizeCrisis makes the detected flag and severity agree: any tier
// above none means a crisis, and a flagged crisis is at least low.
func NormalizeCrisis(est CrisisEstimate) (models.CrisisResult, error) {
	severity, err := ParseSeverity(est.Severity)
	if err != nil {
		return models.CrisisResult{}, err
	}

	detected := est.Detected
	if severity != models.SeverityNone {
		detected = true
	} else if detected {
		severity = models.SeverityLow
	}

	return models.CrisisResult{
		CrisisDetected: detected,
		Severity:       severity,
		Confidence:     ClampConfidence(est.Confidence),
	}, nil
}

func NormalizeSummary(summary string) (models.SummaryResult, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return models.SummaryResult{}, fmt.Errorf("%w: empty summary", ErrUpstreamInference)
	}
	return models.SummaryResult{Summary: summary}, nil
}
