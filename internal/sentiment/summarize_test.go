package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one! Third?  ")
	assert.Equal(t, []string{"First one.", "Second one!", "Third?"}, got)
}

func TestSummarize_ShortText(t *testing.T) {
	assert.Equal(t, "Just one sentence.", Summarize("Just one sentence."))
	assert.Equal(t, "", Summarize("   "))
}

func TestSummarize_KeepsQuarterInOrder(t *testing.T) {
	text := strings.Join([]string{
		"Climate change is driven by greenhouse gas emissions.",
		"My cat likes naps.",
		"Greenhouse gas emissions come from burning fossil fuels.",
		"The weather was nice.",
		"Reducing fossil fuels lowers greenhouse gas emissions and slows climate change.",
		"Lunch was pasta.",
		"Tea is warm.",
		"Birds sing.",
	}, " ")

	summary := Summarize(text)
	sentences := SplitSentences(summary)

	assert.Len(t, sentences, 2)
	assert.NotContains(t, summary, "cat")
	assert.Less(t, len(summary), len(text))

	// Original order is preserved.
	first := strings.Index(text, sentences[0])
	second := strings.Index(text, sentences[1])
	assert.Less(t, first, second)
}

func TestSummarize_NoSentenceContentFallsBackToInput(t *testing.T) {
	for _, text := range []string{"...", "!!!", "https://example.com/article", "***", "  ?!  "} {
		assert.NotEmpty(t, Summarize(text), text)
	}
	assert.Equal(t, "https://example.com/article", Summarize("  https://example.com/article \n"))
}
