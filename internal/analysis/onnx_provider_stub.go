//go:build !ORT && !ALL

package analysis

import (
	"context"
	"errors"

	"github.com/spacesedan/mooddecode/config"
)

var errONNXUnavailable = errors.New("onnx provider requires a build with the ORT tag and onnxruntime installed")

type ONNXMoodAnalyzer struct{}

func NewONNXMoodAnalyzer(cfg config.ONNXConfig) (*ONNXMoodAnalyzer, error) {
	return nil, errONNXUnavailable
}

func (a *ONNXMoodAnalyzer) AnalyzeMood(ctx context.Context, text string) (MoodEstimate, error) {
	return MoodEstimate{}, errONNXUnavailable
}

func (a *ONNXMoodAnalyzer) Close() error {
	return nil
}
