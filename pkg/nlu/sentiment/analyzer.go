package sentiment

import (
	"regexp"
	"strings"
)

type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

const (
	// emojiWeight scales each matched emoji relative to a matched word.
	emojiWeight = 1.5
	// questionDamping softens negative cues when the text is a question.
	questionDamping = 0.7
)

type Lexicon struct {
	PositiveWords []string
	NegativeWords []string
	PositiveEmoji []string
	NegativeEmoji []string
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "awesome", "fantastic", "wonderful", "brilliant",
			"helpful", "thank", "thanks", "appreciate", "love", "like", "happy", "glad", "pleased",
			"satisfied", "yes", "correct", "right", "perfect", "beautiful", "nice", "cool",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible", "poor", "disappointing", "frustrating", "annoying",
			"unhelpful", "wrong", "not working", "broken", "issue", "problem", "error", "bug", "fail",
			"hate", "dislike", "angry", "upset", "mad", "confused", "no", "not", "cannot", "can't",
		},
		PositiveEmoji: []string{"😊", "😄", "👍", "🙂", "😁", "🎉", "❤️", "👏", "✅", "💯"},
		NegativeEmoji: []string{"😞", "😟", "👎", "😠", "😡", "😕", "❌", "💔", "😢", "😭"},
	}
}

// Analyzer labels text by comparing weighted positive and negative cue counts.
type Analyzer struct {
	positive []*regexp.Regexp
	negative []*regexp.Regexp
	lexicon  Lexicon
}

func NewAnalyzer(lex Lexicon) *Analyzer {
	return &Analyzer{
		positive: compileWords(lex.PositiveWords),
		negative: compileWords(lex.NegativeWords),
		lexicon:  lex,
	}
}

func compileWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

// Score returns the weighted positive and negative totals for text.
// Every occurrence of a lexicon word counts once, each distinct emoji
// present counts emojiWeight.
func (a *Analyzer) Score(text string) (positive, negative float64) {
	lower := strings.ToLower(text)

	for _, re := range a.positive {
		positive += float64(len(re.FindAllStringIndex(lower, -1)))
	}
	for _, re := range a.negative {
		negative += float64(len(re.FindAllStringIndex(lower, -1)))
	}

	positive += emojiWeight * float64(countPresent(text, a.lexicon.PositiveEmoji))
	negative += emojiWeight * float64(countPresent(text, a.lexicon.NegativeEmoji))
	return positive, negative
}

// Analyze labels text. In a question the negative total is damped before it
// is weighed against the positive one, but it must still exceed the positive
// total on its own to win.
func (a *Analyzer) Analyze(text string) Sentiment {
	pos, neg := a.Score(text)
	damping := 1.0
	if strings.Contains(text, "?") {
		damping = questionDamping
	}
	switch {
	case pos > neg*damping:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}

func countPresent(text string, emoji []string) int {
	n := 0
	for _, e := range emoji {
		if e != "" && strings.Contains(text, e) {
			n++
		}
	}
	return n
}

// Acknowledgment is the prefix a reply may carry for the user's sentiment.
func Acknowledgment(s Sentiment) string {
	switch s {
	case Positive:
		return "I'm glad to hear that! "
	case Negative:
		return "I understand your concern. "
	default:
		return ""
	}
}
