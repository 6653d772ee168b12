package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/models"
)

// HuggingFaceClient calls the Hugging Face hosted inference API. Every
// model is addressed as BaseURL + model id.
type HuggingFaceClient struct {
	Client   *http.Client
	BaseURL  string
	APIToken string
}

func NewHuggingFaceClient(cfg config.HuggingFaceConfig) *HuggingFaceClient {
	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", cfg.Timeout))

	return &HuggingFaceClient{
		Client: &http.Client{
			Timeout: cfg.Timeout,
		},
		BaseURL:  strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		APIToken: cfg.APIToken,
	}
}

// ClassifyText runs a text-classification model and returns every label
// it scored, highest first as the API orders them.
func (h *HuggingFaceClient) ClassifyText(ctx context.Context, model, text string) ([]models.HFLabelScore, error) {
	var result [][]models.HFLabelScore
	input := models.HFInferenceRequest{
		Inputs:     text,
		Parameters: &models.HFParameters{TopK: len(models.Emotions)},
		Options:    &models.HFOptions{WaitForModel: true},
	}

	if err := h.timed(ctx, "text-classification", model, input, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 || len(result[0]) == 0 {
		return nil, errors.New("text-classification returned no labels")
	}
	return result[0], nil
}

// ZeroShot scores text against candidate labels with an NLI model.
func (h *HuggingFaceClient) ZeroShot(ctx context.Context, model, text string, labels []string, template string) (models.HFZeroShotResponse, error) {
	var result models.HFZeroShotResponse
	input := models.HFInferenceRequest{
		Inputs: text,
		Parameters: &models.HFParameters{
			CandidateLabels:    labels,
			HypothesisTemplate: template,
		},
		Options: &models.HFOptions{WaitForModel: true},
	}

	if err := h.timed(ctx, "zero-shot-classification", model, input, &result); err != nil {
		return result, err
	}
	if len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		return result, errors.New("zero-shot-classification returned mismatched labels and scores")
	}
	return result, nil
}

// Summarize runs a summarization model and returns the generated text.
func (h *HuggingFaceClient) Summarize(ctx context.Context, model, text string) (string, error) {
	var result []models.HFSummaryResponse
	input := models.HFInferenceRequest{
		Inputs:  text,
		Options: &models.HFOptions{WaitForModel: true},
	}

	if err := h.timed(ctx, "summarization", model, input, &result); err != nil {
		return "", err
	}
	if len(result) == 0 {
		return "", errors.New("summarization returned no output")
	}
	return result[0].SummaryText, nil
}

// Ping reports whether the model endpoint is reachable. Any status below
// 500 counts as reachable; a cold model answers 503.
func (h *HuggingFaceClient) Ping(ctx context.Context, model string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+model, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	h.setHeaders(req)

	resp, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}

func (h *HuggingFaceClient) timed(ctx context.Context, task, model string, input, output interface{}) error {
	start := time.Now()
	slog.Debug("[HuggingFaceClient] Requesting inference",
		slog.String("task", task),
		slog.String("model", model))

	if err := h.postJSON(ctx, h.BaseURL+model, input, output); err != nil {
		slog.Error("[HuggingFaceClient] Inference request failed",
			slog.String("task", task),
			slog.String("model", model),
			slog.Duration("elapsed", time.Since(start)))
		return err
	}

	slog.Debug("[HuggingFaceClient] Inference request successful",
		slog.String("task", task),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (h *HuggingFaceClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", USER_AGENT)
	if h.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.APIToken)
	}
}

func (h *HuggingFaceClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to marshal input",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to build request",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	h.setHeaders(req)

	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Error("[HuggingFaceClient] Request failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to read response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("[HuggingFaceClient] Unexpected status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return errors.New(errMsg(resp.StatusCode, respBody))
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > PREVIEW_LENGTH {
		raw = raw[:PREVIEW_LENGTH]
	}
	return slog.String("raw_response", raw)
}

func errMsg(status int, body []byte) string {
	var apiErr models.HFErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Sprintf("status code %d: %s", status, apiErr.Error)
	}
	return fmt.Sprintf("status code %d", status)
}
