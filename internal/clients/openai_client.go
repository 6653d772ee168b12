package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spacesedan/mooddecode/config"
)

// LLMClient talks to an OpenAI compatible chat completions API. The
// default base URL points at Groq.
type LLMClient struct {
	Client *openai.Client
	Model  string
}

// ChatRequest is one JSON-mode completion.
type ChatRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

func NewLLMClient(cfg config.LLMConfig) *LLMClient {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(httpClient),
		option.WithHeader("User-Agent", USER_AGENT),
		option.WithMaxRetries(0),
	)

	slog.Info("[LLMClient] LLM client initialized",
		slog.String("base_url", cfg.BaseURL),
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout))

	return &LLMClient{
		Client: client,
		Model:  cfg.Model,
	}
}

// CompleteJSON sends a JSON-mode chat completion and returns the cleaned
// content of the first choice.
func (c *LLMClient) CompleteJSON(ctx context.Context, req ChatRequest) (string, error) {
	start := time.Now()

	chatCompletion, err := c.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		}),
		Model:       openai.F(openai.ChatModel(c.Model)),
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
		ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
			openai.ResponseFormatJSONObjectParam{
				Type: openai.F(openai.ResponseFormatJSONObjectTypeJSONObject),
			},
		),
	})
	if err != nil {
		slog.Error("[LLMClient] Chat completion failed",
			slog.String("model", c.Model),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", describeAPIError(err)))
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		slog.Warn("[LLMClient] Chat completion returned no content",
			slog.String("model", c.Model))
		return "", errors.New("chat completion returned no content")
	}

	slog.Debug("[LLMClient] Chat completion successful",
		slog.String("model", c.Model),
		slog.Duration("elapsed", time.Since(start)))

	return CleanJSONResponse(chatCompletion.Choices[0].Message.Content), nil
}

// Ping checks that the API answers and the key is accepted.
func (c *LLMClient) Ping(ctx context.Context) error {
	if _, err := c.Client.Models.List(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// CleanJSONResponse strips markdown code fences and curly quotes some
// models wrap around JSON output.
func CleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`)
	response = strings.ReplaceAll(response, "”", `"`)

	return strings.TrimSpace(response)
}

func describeAPIError(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("status code %d", apiErr.StatusCode)
	}
	return err.Error()
}
