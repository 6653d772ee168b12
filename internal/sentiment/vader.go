package sentiment

import (
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// Smartypants output is folded back to ASCII so negations like "don't"
// still match.
var quoteReplacer = strings.NewReplacer("’", "'", "‘", "'", "“", `"`, "”", `"`, "–", "-", "—", "-")

// Compound scores at or beyond this magnitude count as polar.
const POLARITY_THRESHOLD = 0.20

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the resulting HTML so
// only readable text is scored.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	plainText = quoteReplacer.Replace(plainText)

	return strings.Join(strings.Fields(plainText), " ")
}

func AnalyzeWithVADER(text string) (float64, string) {
	sentiment := analyzer.PolarityScores(ConvertMarkdownToText(text))
	score := sentiment.Compound

	var label string
	if score >= POLARITY_THRESHOLD {
		label = "positive"
	} else if score <= -POLARITY_THRESHOLD {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

var (
	angerCues    = compileCues("angry", "furious", "mad", "hate", "rage", "annoyed", "pissed", "outraged", "irritated")
	fearCues     = compileCues("afraid", "scared", "terrified", "anxious", "worried", "panic", "nervous", "frightened")
	disgustCues  = compileCues("disgusting", "disgusted", "gross", "revolting", "sickening", "nasty")
	surpriseCues = compileCues("surprised", "shocked", "unexpected", "can't believe", "astonished", "wow")
)

// ClassifyEmotion maps VADER polarity plus a small cue lexicon onto the
// emotion set. Confidence is the compound magnitude for polar text and
// the neutral proportion otherwise.
func ClassifyEmotion(text string) (string, float64) {
	plain := ConvertMarkdownToText(text)
	scores := analyzer.PolarityScores(plain)
	tokens := tokenize(plain)

	if hasCue(tokens, surpriseCues) && scores.Compound > -POLARITY_THRESHOLD {
		return "surprise", clamp(0.5 + math.Abs(scores.Compound)/2)
	}

	switch {
	case scores.Compound >= POLARITY_THRESHOLD:
		return "happy", clamp(scores.Compound)
	case scores.Compound <= -POLARITY_THRESHOLD:
		confidence := clamp(math.Abs(scores.Compound))
		switch {
		case hasCue(tokens, angerCues):
			return "angry", confidence
		case hasCue(tokens, fearCues):
			return "fear", confidence
		case hasCue(tokens, disgustCues):
			return "disgust", confidence
		default:
			return "sad", confidence
		}
	default:
		return "neutral", clamp(scores.Neutral)
	}
}

func normalize(text string) string {
	return quoteReplacer.Replace(strings.ToLower(text))
}

func hasCue(tokens []string, cues []cue) bool {
	return countCues(tokens, cues, true) > 0
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
