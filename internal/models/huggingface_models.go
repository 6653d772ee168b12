package models

type HFInferenceRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters *HFParameters `json:"parameters,omitempty"`
	Options    *HFOptions    `json:"options,omitempty"`
}

type HFOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type HFParameters struct {
	CandidateLabels    []string `json:"candidate_labels,omitempty"`
	HypothesisTemplate string   `json:"hypothesis_template,omitempty"`
	TopK               int      `json:"top_k,omitempty"`
	MaxLength          int      `json:"max_length,omitempty"`
	MinLength          int      `json:"min_length,omitempty"`
}

// HFLabelScore is one entry of a text-classification response. The API
// returns [[{label, score}, ...]] for a single input.
type HFLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type HFZeroShotResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

type HFSummaryResponse struct {
	SummaryText string `json:"summary_text"`
}

type HFErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}
