package models

// AnalysisRequest is the body accepted by every POST endpoint.
type AnalysisRequest struct {
	Text string `json:"text"`
}

type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
	EmotionNeutral  Emotion = "neutral"
)

var Emotions = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionFear,
	EmotionSurprise,
	EmotionDisgust,
	EmotionNeutral,
}

func (e Emotion) Valid() bool {
	for _, v := range Emotions {
		if e == v {
			return true
		}
	}
	return false
}

// Severity is an ordinal risk tier: none < low < moderate < high.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

var Severities = []Severity{SeverityNone, SeverityLow, SeverityModerate, SeverityHigh}

func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Rank returns the ordinal position of s, or -1 if s is not a known tier.
func (s Severity) Rank() int {
	for i, v := range Severities {
		if s == v {
			return i
		}
	}
	return -1
}

type MoodResult struct {
	Emotion    Emotion `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

type CrisisResult struct {
	CrisisDetected bool     `json:"crisis_detected"`
	Severity       Severity `json:"severity"`
	Confidence     float64  `json:"confidence"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
