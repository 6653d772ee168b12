package analysis

import (
	"context"
	"testing"

	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProvider_ThroughService(t *testing.T) {
	local := NewLocalProvider()
	svc := NewService(local, local, local)
	ctx := context.Background()

	mood, err := svc.AnalyzeMood(ctx, "I'm thrilled about my promotion!")
	require.NoError(t, err)
	assert.Equal(t, models.EmotionHappy, mood.Emotion)
	assert.True(t, mood.Confidence >= 0 && mood.Confidence <= 1)

	crisis, err := svc.DetectCrisis(ctx, "I don't want to be here anymore.")
	require.NoError(t, err)
	assert.True(t, crisis.CrisisDetected)
	assert.Equal(t, models.SeverityHigh, crisis.Severity)

	calm, err := svc.DetectCrisis(ctx, "The train leaves at noon.")
	require.NoError(t, err)
	assert.False(t, calm.CrisisDetected)
	assert.Equal(t, models.SeverityNone, calm.Severity)

	summary, err := svc.Summarize(ctx, "One thing happened. Then another thing happened. A third thing. And a fourth.")
	require.NoError(t, err)
	assert.NotEmpty(t, summary.Summary)
}

func TestLocalProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalProvider().AnalyzeMood(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalProvider_SummarizeWithoutSentences(t *testing.T) {
	local := NewLocalProvider()
	svc := NewService(local, local, local)

	for _, text := range []string{"...", "!!!", "https://example.com/article", "***"} {
		summary, err := svc.Summarize(context.Background(), text)
		require.NoError(t, err, text)
		assert.NotEmpty(t, summary.Summary, text)
	}
}
