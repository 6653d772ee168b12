package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessCrisis(t *testing.T) {
	cases := []struct {
		text     string
		severity string
	}{
		{"I don't want to be here anymore.", "high"},
		{"I don’t want to be here anymore.", "high"},
		{"Sometimes I think everyone would be better off without me.", "high"},
		{"I feel hopeless and trapped.", "moderate"},
		{"I'm feeling overwhelmed lately.", "low"},
		{"Lunch was great, see you tomorrow!", "none"},
	}

	for _, tc := range cases {
		severity, confidence := AssessCrisis(tc.text)
		assert.Equal(t, tc.severity, severity, tc.text)
		assert.GreaterOrEqual(t, confidence, 0.0, tc.text)
		assert.LessOrEqual(t, confidence, 1.0, tc.text)
	}
}

func TestAssessCrisis_MoreCuesRaiseConfidence(t *testing.T) {
	_, one := AssessCrisis("I feel hopeless.")
	_, two := AssessCrisis("I feel hopeless and trapped with no way out.")

	assert.Greater(t, two, one)
}

func TestAssessCrisis_MatchesWholeWordsOnly(t *testing.T) {
	cases := []struct {
		text     string
		severity string
	}{
		{"The magician made the coin disappear!", "none"},
		{"I sometimes wish I could disappear.", "moderate"},
		{"Thinking about self harm again.", "moderate"},
	}

	for _, tc := range cases {
		severity, _ := AssessCrisis(tc.text)
		assert.Equal(t, tc.severity, severity, tc.text)
	}
}

func TestAssessCrisis_NegatedCues(t *testing.T) {
	severity, _ := AssessCrisis("I am not sad at all, life is wonderful.")
	assert.Equal(t, "none", severity)

	severity, _ = AssessCrisis("I'm never lonely with my friends around.")
	assert.Equal(t, "none", severity)

	// Negation does not clear the high tier.
	severity, _ = AssessCrisis("I'm not suicidal, but I think about suicide.")
	assert.Equal(t, "high", severity)
}
