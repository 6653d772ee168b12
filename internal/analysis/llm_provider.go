package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spacesedan/mooddecode/internal/clients"
	"github.com/spacesedan/mooddecode/internal/models"
)

// ChatCompleter is the slice of clients.LLMClient the provider needs.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, req clients.ChatRequest) (string, error)
	Ping(ctx context.Context) error
}

// LLMProvider serves all three capabilities from a JSON-mode chat model.
type LLMProvider struct {
	client ChatCompleter
}

func NewLLMProvider(client ChatCompleter) *LLMProvider {
	return &LLMProvider{client: client}
}

func (p *LLMProvider) AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error) {
	var reply models.LLMMoodReply
	err := p.complete(ctx, clients.ChatRequest{
		System:      moodSystemPrompt,
		User:        fmt.Sprintf(moodPromptTemplate, text),
		Temperature: 0.2,
		MaxTokens:   100,
	}, &reply)
	if err != nil {
		return MoodEstimate{}, err
	}
	return MoodEstimate{Label: reply.Emotion, Confidence: reply.Confidence}, nil
}

func (p *LLMProvider) DetectCrisis(ctx context.Context, text string) (CrisisEstimate, error) {
	var reply models.LLMCrisisReply
	err := p.complete(ctx, clients.ChatRequest{
		System:      crisisSystemPrompt,
		User:        fmt.Sprintf(crisisPromptTemplate, text),
		Temperature: 0.1,
		MaxTokens:   150,
	}, &reply)
	if err != nil {
		return CrisisEstimate{}, err
	}
	return CrisisEstimate{
		Detected:   reply.CrisisDetected,
		Severity:   reply.Severity,
		Confidence: reply.Confidence,
	}, nil
}

func (p *LLMProvider) Summarize(ctx context.Context, text string) (string, error) {
	var reply models.LLMSummaryReply
	err := p.complete(ctx, clients.ChatRequest{
		System:      summarySystemPrompt,
		User:        fmt.Sprintf(summaryPromptTemplate, text),
		Temperature: 0.4,
		MaxTokens:   300,
	}, &reply)
	if err != nil {
		return "", err
	}
	return reply.Summary, nil
}

func (p *LLMProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *LLMProvider) complete(ctx context.Context, req clients.ChatRequest, out interface{}) error {
	content, err := p.client.CompleteJSON(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse model reply as JSON: %w", err)
	}
	return nil
}
