package sentiment

import "math"

// Crisis cues by severity tier. Cues in the high tier count even when
// negated: "I'm not suicidal" still reaches a reviewer.
var crisisLexicon = []struct {
	severity  string
	base      float64
	negatable bool
	cues      []cue
}{
	{
		severity: "high",
		base:     0.85,
		cues: compileCues(
			"kill myself", "end my life", "suicide", "suicidal", "want to die",
			"don't want to be here", "dont want to be here", "no reason to live",
			"better off dead", "better off without me", "end it all", "take my own life",
			"not be alive", "overdose",
		),
	},
	{
		severity:  "moderate",
		base:      0.7,
		negatable: true,
		cues: compileCues(
			"hurt myself", "self-harm", "cutting myself", "hopeless",
			"trapped", "a burden", "can't go on", "cant go on", "want to disappear",
			"wish i could disappear", "no way out", "give up on everything", "worthless",
		),
	},
	{
		severity:  "low",
		base:      0.55,
		negatable: true,
		cues: compileCues(
			"overwhelmed", "bad day", "stressed", "lonely", "exhausted",
			"depressed", "miserable", "can't cope", "struggling", "sad",
		),
	},
}

// AssessCrisis returns a severity tier and confidence for text using the
// cue lexicon, with VADER negativity raising confidence. Text with no
// cues is "none", confident in proportion to how non-negative it is.
func AssessCrisis(text string) (string, float64) {
	plain := ConvertMarkdownToText(text)
	tokens := tokenize(plain)
	scores := analyzer.PolarityScores(plain)
	negativity := math.Max(0, -scores.Compound)

	for _, tier := range crisisLexicon {
		matches := countCues(tokens, tier.cues, tier.negatable)
		if matches == 0 {
			continue
		}
		confidence := tier.base + 0.05*float64(matches-1) + 0.1*negativity
		return tier.severity, clamp(math.Min(confidence, 0.99))
	}

	return "none", clamp(0.6 + 0.4*(1-negativity))
}
