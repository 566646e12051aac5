package sentiment

import "testing"

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer(DefaultLexicon())

	tests := []struct {
		name string
		text string
		want Sentiment
	}{
		{"positive words", "I love this, great job!", Positive},
		{"negative words", "this is broken and terrible", Negative},
		{"neutral", "it works", Neutral},
		{"empty", "", Neutral},
		{"case insensitive", "AWESOME stuff", Positive},
		{"positive emoji outweighs word", "meh bad 🎉", Positive},
		{"negative emoji", "deployment finished 😡", Negative},
		{"tie is neutral", "good but bad", Neutral},
		{"contraction", "I can't log in", Negative},
		{"whole word only", "the goodness of badges", Neutral},
		{"question damps negative", "great, but is it broken?", Positive},
		{"question with thanks", "thanks, any issue?", Positive},
		{"negative question", "is this broken?", Negative},
		{"question still negative when outweighed", "good but bad and broken?", Negative},
		{"plain question", "what is kubernetes?", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Analyze(tt.text); got != tt.want {
				t.Errorf("Analyze(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreCountsEveryWordOccurrence(t *testing.T) {
	a := NewAnalyzer(DefaultLexicon())

	pos, neg := a.Score("great great great")
	if pos != 3 || neg != 0 {
		t.Errorf("Score() = (%v, %v), want (3, 0)", pos, neg)
	}

	pos, _ = a.Score("👍👍 done")
	if pos != 1.5 {
		t.Errorf("repeated emoji scored %v, want 1.5", pos)
	}
}

func TestAcknowledgment(t *testing.T) {
	tests := []struct {
		in   Sentiment
		want string
	}{
		{Positive, "I'm glad to hear that! "},
		{Negative, "I understand your concern. "},
		{Neutral, ""},
	}
	for _, tt := range tests {
		if got := Acknowledgment(tt.in); got != tt.want {
			t.Errorf("Acknowledgment(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
