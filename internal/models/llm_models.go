package models

// LLM replies are decoded into these loose shapes first so that label
// normalization can happen before the values reach the public types.

type LLMMoodReply struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

type LLMCrisisReply struct {
	CrisisDetected bool    `json:"crisis_detected"`
	Severity       string  `json:"severity"`
	Confidence     float64 `json:"confidence"`
}

type LLMSummaryReply struct {
	Summary string `json:"summary"`
}
