//go:build ORT || ALL

package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/mooddecode/config"
)

// ONNXMoodAnalyzer runs an emotion classification model in process through
// the onnxruntime backend of hugot.
type ONNXMoodAnalyzer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewONNXMoodAnalyzer loads the model from cfg.ModelDir, downloading it
// from the Hugging Face hub on first use.
func NewONNXMoodAnalyzer(cfg config.ONNXConfig) (*ONNXMoodAnalyzer, error) {
	if err := os.MkdirAll(cfg.ModelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(cfg.ModelDir, strings.ReplaceAll(cfg.EmotionModel, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[ONNXMoodAnalyzer] Model not found, downloading...",
			slog.String("model", cfg.EmotionModel))
		modelPath, err = hugot.DownloadModel(cfg.EmotionModel, cfg.ModelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download model %s: %w", cfg.EmotionModel, err)
		}
		slog.Info("[ONNXMoodAnalyzer] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[ONNXMoodAnalyzer] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "emotionClassificationPipeline",
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to initialize emotion pipeline: %w", err)
	}

	return &ONNXMoodAnalyzer{session: session, pipeline: pipeline}, nil
}

func (a *ONNXMoodAnalyzer) AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error) {
	if err := ctx.Err(); err != nil {
		return MoodEstimate{}, err
	}

	output, err := a.pipeline.RunPipeline([]string{text})
	if err != nil {
		return MoodEstimate{}, fmt.Errorf("emotion pipeline failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return MoodEstimate{}, errors.New("emotion pipeline returned no labels")
	}

	best := output.ClassificationOutputs[0][0]
	for _, c := range output.ClassificationOutputs[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return MoodEstimate{Label: best.Label, Confidence: float64(best.Score)}, nil
}

func (a *ONNXMoodAnalyzer) Close() error {
	return a.session.Destroy()
}
