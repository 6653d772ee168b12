package models

type ServiceInfo struct {
	Message   string           `json:"message"`
	Endpoints ServiceEndpoints `json:"endpoints"`
	Status    string           `json:"status"`
}

type ServiceEndpoints struct {
	MoodAnalysis      string `json:"mood_analysis"`
	CrisisDetection   string `json:"crisis_detection"`
	TextSummarization string `json:"text_summarization"`
}

type HealthResponse struct {
	Status   string            `json:"status"`
	API      string            `json:"api"`
	Upstream map[string]string `json:"upstream,omitempty"`
}
