package sentiment

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Summaries keep roughly this share of the source sentences.
const SUMMARY_RATIO = 0.25

var (
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)
	wordPattern     = regexp.MustCompile(`[\p{L}\p{N}']+`)
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {}, "of": {},
	"to": {}, "in": {}, "on": {}, "at": {}, "for": {}, "with": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "it": {}, "this": {}, "that": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "we": {}, "they": {}, "my": {}, "me": {},
	"as": {}, "by": {}, "from": {}, "so": {}, "not": {}, "have": {}, "has": {}, "had": {},
}

// SplitSentences breaks plain text into trimmed, non-empty sentences.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentencePattern.FindAllString(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Summarize is a frequency based extractive summarizer. It keeps the
// highest scoring sentences, about a quarter of them and at least one,
// in their original order. Text with no sentence content, such as a bare
// link or a run of punctuation, is returned as is with whitespace collapsed.
func Summarize(text string) string {
	plain := ConvertMarkdownToText(text)
	sentences := SplitSentences(plain)
	switch len(sentences) {
	case 0:
		if plain != "" {
			return plain
		}
		return strings.Join(strings.Fields(text), " ")
	case 1:
		return sentences[0]
	}

	freq := make(map[string]float64)
	for _, s := range sentences {
		for _, w := range contentWords(s) {
			freq[w]++
		}
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		words := contentWords(s)
		var total float64
		for _, w := range words {
			total += freq[w]
		}
		if len(words) > 0 {
			total /= float64(len(words))
		}
		ranked[i] = scored{index: i, score: total}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	keep := int(math.Ceil(float64(len(sentences)) * SUMMARY_RATIO))
	chosen := ranked[:keep]
	sort.Slice(chosen, func(a, b int) bool {
		return chosen[a].index < chosen[b].index
	})

	parts := make([]string, 0, keep)
	for _, c := range chosen {
		parts = append(parts, sentences[c.index])
	}
	return strings.Join(parts, " ")
}

func contentWords(sentence string) []string {
	var words []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(sentence), -1) {
		if _, stop := stopWords[w]; !stop {
			words = append(words, w)
		}
	}
	return words
}
