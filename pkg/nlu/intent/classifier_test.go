package intent

import (
	"math"
	"testing"

	"devonn-assistant-be/pkg/chat/state"
	"devonn-assistant-be/pkg/nlu/entity"
	"devonn-assistant-be/pkg/nlu/sentiment"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	tests := []struct {
		name       string
		text       string
		wantType   string
		wantConf   float64
		wantFailed int
	}{
		{"no keywords", "xyz123 qwop", TypeTechnical, 0.6, 1},
		{"greeting", "hello", TypeGreeting, 0.95, 0},
		{"deployment beats help", "hello, can you help me deploy on kubernetes?", TypeDeployment, 0.95, 0},
		{"farewell", "ok goodbye", TypeFarewell, 0.95, 0},
		{"weak single match", "what about the fee", TypeTechnical, 0.6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next := c.Classify(tt.text, nil, sentiment.Neutral, state.New())
			if got.Type != tt.wantType {
				t.Errorf("Classify(%q).Type = %q, want %q", tt.text, got.Type, tt.wantType)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.text, got.Confidence, tt.wantConf)
			}
			if next.FailedIntentCount != tt.wantFailed {
				t.Errorf("FailedIntentCount = %d, want %d", next.FailedIntentCount, tt.wantFailed)
			}
		})
	}
}

func TestClassifyTieGoesToFirstDefinition(t *testing.T) {
	c := NewClassifier(Config{
		Taxonomy: Taxonomy{
			{Name: "first", Keywords: []string{"alpha"}},
			{Name: "second", Keywords: []string{"alpha"}},
		},
		ContextBias:   0.15,
		ContextWindow: 5,
	})

	got, _ := c.Classify("alpha", nil, sentiment.Neutral, state.New())
	if got.Type != "first" {
		t.Errorf("Classify() tie = %q, want %q", got.Type, "first")
	}
}

func TestClassifyContextBias(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	ctx := state.New()
	ctx.LastIntent = TypePricing
	ctx.MessageCount = 1

	got, next := c.Classify("what about the fee", nil, sentiment.Neutral, ctx)
	if got.Type != TypePricing {
		t.Fatalf("Classify() with bias = %q, want %q", got.Type, TypePricing)
	}
	if math.Abs(got.Confidence-0.9) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
	if next.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", next.MessageCount)
	}

	ctx.MessageCount = 5
	got, _ = c.Classify("what about the fee", nil, sentiment.Neutral, ctx)
	if got.Type != TypeTechnical {
		t.Errorf("Classify() after window = %q, want fallback", got.Type)
	}
}

func TestScores(t *testing.T) {
	pair := Taxonomy{{Name: "pair", Keywords: []string{"ab", "cd"}}}

	tests := []struct {
		name     string
		taxonomy Taxonomy
		text     string
		intent   string
		want     float64
	}{
		{"single long keyword", DefaultTaxonomy(), "hello", TypeGreeting, 0.8},
		{"two keywords", DefaultTaxonomy(), "ok goodbye", TypeFarewell, 1.08},
		{"three keywords", DefaultTaxonomy(), "deploy kubernetes install", TypeDeployment, 2.08},
		{"short keywords inside longer words", pair, "alphabet ab cd x", "pair", 0.6},
		{"no match", DefaultTaxonomy(), "xyz123 qwop", TypeHelp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Taxonomy = tt.taxonomy
			c := NewClassifier(cfg)

			scores := c.Scores(tt.text, state.New())
			for i, def := range c.Taxonomy() {
				if def.Name != tt.intent {
					continue
				}
				if math.Abs(scores[i]-tt.want) > 1e-9 {
					t.Errorf("Scores(%q)[%s] = %v, want %v", tt.text, def.Name, scores[i], tt.want)
				}
				return
			}
			t.Fatalf("intent %q not in taxonomy", tt.intent)
		})
	}
}

func TestClassifyAcceptsScoreOnFloor(t *testing.T) {
	c := NewClassifier(Config{
		Taxonomy:      Taxonomy{{Name: "first", Keywords: []string{"alpha"}}},
		ContextBias:   0.3,
		ContextWindow: 5,
	})

	ctx := state.New()
	ctx.LastIntent = "first"
	ctx.MessageCount = 1

	got, next := c.Classify("zzz", nil, sentiment.Neutral, ctx)
	if got.Type != "first" {
		t.Fatalf("Classify() = %q, want %q", got.Type, "first")
	}
	if math.Abs(got.Confidence-0.8) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.8", got.Confidence)
	}
	if next.FailedIntentCount != 0 || next.MessageCount != 2 {
		t.Errorf("next context = %+v", next)
	}
}

func TestScoresTopicBonus(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	ctx := state.New()
	ctx.TopicHistory = []string{TypePricing, TypeAPI, TypeStatus}
	ctx.LastIntent = TypeStatus
	ctx.MessageCount = 10

	scores := c.Scores("fee", ctx)
	want := map[string]float64{
		TypePricing: 0.55,
		TypeAPI:     0.15,
		TypeStatus:  0.15,
		TypeHelp:    0,
	}
	for i, def := range c.Taxonomy() {
		w, ok := want[def.Name]
		if !ok {
			continue
		}
		if math.Abs(scores[i]-w) > 1e-9 {
			t.Errorf("score[%s] = %v, want %v", def.Name, scores[i], w)
		}
	}
}

func TestClassifyUpdatesContext(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	ctx := state.New()
	ents := []entity.Entity{{Type: entity.TypeService, Value: "helm"}}

	got, next := c.Classify("hello there", ents, sentiment.Positive, ctx)

	if got.Type != TypeGreeting {
		t.Fatalf("Type = %q, want greeting", got.Type)
	}
	if len(got.Entities) != 1 {
		t.Errorf("Entities = %v, want the extracted entities", got.Entities)
	}
	if next.LastIntent != TypeGreeting || next.MessageCount != 1 || next.LastUserSentiment != sentiment.Positive {
		t.Errorf("next context = %+v", next)
	}
	if len(next.TopicHistory) != 1 || next.TopicHistory[0] != TypeGreeting {
		t.Errorf("TopicHistory = %v", next.TopicHistory)
	}
	if v := next.Mentioned(entity.TypeService); len(v) != 1 || v[0] != "helm" {
		t.Errorf("MentionedEntities = %v", next.MentionedEntities)
	}
	if ctx.MessageCount != 0 || len(ctx.TopicHistory) != 0 || len(ctx.MentionedEntities) != 0 {
		t.Errorf("input context mutated: %+v", ctx)
	}
}

func TestClassifyFallbackKeepsTopic(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	ctx := state.New()
	ctx.LastIntent = TypeGreeting
	ctx.TopicHistory = []string{TypeGreeting}
	ctx.MessageCount = 7
	ctx.FailedIntentCount = 1

	got, next := c.Classify("xyz", nil, sentiment.Negative, ctx)
	if got.Type != TypeTechnical || got.Confidence != FallbackConfidence {
		t.Fatalf("Classify() = %+v, want technical fallback", got)
	}
	if next.FailedIntentCount != 2 {
		t.Errorf("FailedIntentCount = %d, want 2", next.FailedIntentCount)
	}
	if next.LastIntent != TypeGreeting || next.MessageCount != 7 || len(next.TopicHistory) != 1 {
		t.Errorf("fallback changed conversation memory: %+v", next)
	}
}

func TestClassifyLowConfidenceCountsAsFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLowConfidence = 0.99
	c := NewClassifier(cfg)

	got, next := c.Classify("hello", nil, sentiment.Neutral, state.New())
	if !c.IsLowConfidence(got) {
		t.Fatalf("IsLowConfidence(%+v) = false", got)
	}
	if next.FailedIntentCount != 1 || next.LastIntent != TypeGreeting {
		t.Errorf("next context = %+v", next)
	}
}

func TestIsLowConfidence(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	tests := []struct {
		in   Intent
		want bool
	}{
		{Intent{Type: TypeTechnical, Confidence: 0.6}, true},
		{Intent{Type: TypeTechnical, Confidence: 0.7}, false},
		{Intent{Type: TypeGreeting, Confidence: 0.39}, true},
		{Intent{Type: TypeGreeting, Confidence: 0.4}, false},
	}
	for _, tt := range tests {
		if got := c.IsLowConfidence(tt.in); got != tt.want {
			t.Errorf("IsLowConfidence(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
