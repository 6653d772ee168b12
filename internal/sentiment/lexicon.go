package sentiment

import "strings"

// A cue is a phrase split into tokens. Cues match whole token runs, so
// "mad" never matches inside "made".
type cue []string

// Negators within NEGATION_WINDOW tokens before a cue cancel it.
const NEGATION_WINDOW = 2

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "isn't": {}, "wasn't": {}, "aren't": {},
	"don't": {}, "dont": {}, "didn't": {}, "doesn't": {}, "hardly": {},
}

func compileCues(phrases ...string) []cue {
	cues := make([]cue, 0, len(phrases))
	for _, p := range phrases {
		if tokens := tokenize(p); len(tokens) > 0 {
			cues = append(cues, tokens)
		}
	}
	return cues
}

// tokenize lower-cases text, folds curly quotes and splits it into word
// tokens. Hyphenated words split, so "self-harm" equals "self harm".
func tokenize(text string) []string {
	raw := wordPattern.FindAllString(normalize(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if t = strings.Trim(t, "'"); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// countCues returns how many distinct cues occur in tokens. With
// negatable set, an occurrence preceded by a negator is ignored.
func countCues(tokens []string, cues []cue, negatable bool) int {
	count := 0
	for _, c := range cues {
		if findCue(tokens, c, negatable) {
			count++
		}
	}
	return count
}

func findCue(tokens []string, c cue, negatable bool) bool {
	for i := 0; i+len(c) <= len(tokens); i++ {
		if !tokensEqual(tokens[i:i+len(c)], c) {
			continue
		}
		if negatable && negated(tokens, i) {
			continue
		}
		return true
	}
	return false
}

func negated(tokens []string, start int) bool {
	for j := start - 1; j >= 0 && j >= start-NEGATION_WINDOW; j-- {
		if _, ok := negators[tokens[j]]; ok {
			return true
		}
	}
	return false
}

func tokensEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
