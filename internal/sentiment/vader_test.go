package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMarkdownToText(t *testing.T) {
	in := "# Title\n\nI **don't** like [this link](https://example.com/x) at www.example.com"
	out := ConvertMarkdownToText(in)

	assert.Equal(t, "Title I don't like this link at", out)
}

func TestAnalyzeWithVADER(t *testing.T) {
	score, label := AnalyzeWithVADER("I love this, it is wonderful and amazing!")
	assert.Equal(t, "positive", label)
	assert.Greater(t, score, POLARITY_THRESHOLD)

	score, label = AnalyzeWithVADER("This is terrible, awful and horrible.")
	assert.Equal(t, "negative", label)
	assert.Less(t, score, -POLARITY_THRESHOLD)

	_, label = AnalyzeWithVADER("The meeting is on Tuesday.")
	assert.Equal(t, "neutral", label)
}

func TestClassifyEmotion(t *testing.T) {
	cases := []struct {
		text    string
		emotion string
	}{
		{"I'm thrilled about my promotion!", "happy"},
		{"I am so angry and I hate how unfair this is.", "angry"},
		{"I'm terrified and scared, this is awful.", "fear"},
		{"I'm devastated by this news, it hurts so much.", "sad"},
		{"The report is due on Tuesday.", "neutral"},
	}

	for _, tc := range cases {
		emotion, confidence := ClassifyEmotion(tc.text)
		assert.Equal(t, tc.emotion, emotion, tc.text)
		assert.GreaterOrEqual(t, confidence, 0.0)
		assert.LessOrEqual(t, confidence, 1.0)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-0.5))
	assert.Equal(t, 1.0, clamp(1.5))
	assert.Equal(t, 0.3, clamp(0.3))
}

func TestClassifyEmotion_CueWordsMatchWholeWords(t *testing.T) {
	for _, text := range []string{
		"The magician made the coin disappear!",
		"I made a terrible mistake on the exam.",
	} {
		emotion, _ := ClassifyEmotion(text)
		assert.NotEqual(t, "angry", emotion, text)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"i", "don't", "want", "self", "harm"}, tokenize("I don’t want SELF-HARM!"))
	assert.Equal(t, []string{"quoted"}, tokenize("'quoted'"))
}

func TestCountCues_Negation(t *testing.T) {
	cues := compileCues("sad", "a burden")

	assert.Equal(t, 2, countCues(tokenize("I feel sad and a burden"), cues, true))
	assert.Equal(t, 0, countCues(tokenize("I'm not sad and never a burden"), cues, true))
	assert.Equal(t, 1, countCues(tokenize("I'm not sad"), cues, false))
	assert.Equal(t, 0, countCues(tokenize("madness saddle"), cues, true))
}
