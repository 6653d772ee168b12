package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHFClient(t *testing.T, handler http.HandlerFunc) *HuggingFaceClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHuggingFaceClient(config.HuggingFaceConfig{
		APIToken: "hf-token",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	})
}

func TestClassifyText(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/org/emotion", r.URL.Path)
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))

		var req models.HFInferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "so happy", req.Inputs)
		assert.True(t, req.Options.WaitForModel)

		_, _ = w.Write([]byte(`[[{"label":"joy","score":0.91},{"label":"neutral","score":0.05}]]`))
	})

	labels, err := client.ClassifyText(context.Background(), "org/emotion", "so happy")
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "joy", labels[0].Label)
	assert.InDelta(t, 0.91, labels[0].Score, 1e-9)
}

func TestClassifyText_EmptyResult(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ClassifyText(context.Background(), "org/emotion", "text")
	assert.ErrorContains(t, err, "no labels")
}

func TestZeroShot(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.HFInferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.Parameters.CandidateLabels)
		assert.Equal(t, "This text is {}.", req.Parameters.HypothesisTemplate)

		_, _ = w.Write([]byte(`{"sequence":"x","labels":["b","a"],"scores":[0.8,0.2]}`))
	})

	resp, err := client.ZeroShot(context.Background(), "org/nli", "x", []string{"a", "b"}, "This text is {}.")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, resp.Labels)
}

func TestZeroShot_Mismatched(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"labels":["a","b"],"scores":[1]}`))
	})

	_, err := client.ZeroShot(context.Background(), "org/nli", "x", []string{"a", "b"}, "")
	assert.ErrorContains(t, err, "mismatched")
}

func TestSummarize(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"summary_text":"short version"}]`))
	})

	summary, err := client.Summarize(context.Background(), "org/bart", "a long text")
	require.NoError(t, err)
	assert.Equal(t, "short version", summary)
}

func TestPostJSON_ErrorStatus(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20}`))
	})

	_, err := client.Summarize(context.Background(), "org/bart", "text")
	assert.EqualError(t, err, "status code 503: Model is currently loading")
}

func TestPostJSON_InvalidBody(t *testing.T) {
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Summarize(context.Background(), "org/bart", "text")
	assert.ErrorContains(t, err, "failed to unmarshal response")
}

func TestPing(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	client := newTestHFClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(int(status.Load()))
	})

	assert.NoError(t, client.Ping(context.Background(), "org/bart"))

	status.Store(http.StatusServiceUnavailable)
	assert.Error(t, client.Ping(context.Background(), "org/bart"))
}
