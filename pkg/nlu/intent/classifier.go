package intent

import (
	"math"
	"strings"
	"unicode/utf8"

	"devonn-assistant-be/pkg/chat/state"
	"devonn-assistant-be/pkg/nlu/entity"
	"devonn-assistant-be/pkg/nlu/sentiment"
)

// Intent type constants for the default taxonomy
const (
	TypeGreeting   = "greeting"
	TypeHelp       = "help"
	TypePricing    = "pricing"
	TypeFeatures   = "features"
	TypeDeployment = "deployment"
	TypeTechnical  = "technical"
	TypeFarewell   = "farewell"
	TypeAPI        = "api"
	TypeStatus     = "status"
)

// Scoring weights
const (
	longKeywordWeight  = 0.4
	shortKeywordWeight = 0.2
	longKeywordRunes   = 3
	multiMatchStep     = 0.1
	maxTopicBonusItems = 3
	topicBonusPerItem  = 0.05
	minWinningScore    = 0.3
	confidenceOffset   = 0.5
	maxConfidence      = 0.95
)

// FallbackConfidence is reported when no intent scores high enough.
const FallbackConfidence = 0.6

type Intent struct {
	Type       string          `json:"type"`
	Confidence float64         `json:"confidence"`
	Entities   []entity.Entity `json:"entities"`
}

type Definition struct {
	Name     string
	Keywords []string
}

// Taxonomy is the ordered set of intents. Order breaks score ties.
type Taxonomy []Definition

func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{TypeGreeting, []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"}},
		{TypeHelp, []string{"help", "assist", "support", "guide", "how to", "how do i"}},
		{TypePricing, []string{"price", "cost", "billing", "subscription", "pay", "money", "fee"}},
		{TypeFeatures, []string{"feature", "capability", "can do", "functionality", "what does", "what can"}},
		{TypeDeployment, []string{"deploy", "deployment", "install", "setup", "configure", "kubernetes", "k8s"}},
		{TypeTechnical, []string{"code", "api", "integration", "architecture", "infrastructure", "microservice"}},
		{TypeFarewell, []string{"bye", "goodbye", "see you", "farewell", "exit", "close"}},
		{TypeAPI, []string{"api", "endpoint", "connect", "integration", "service", "webhook"}},
		{TypeStatus, []string{"status", "health", "monitor", "metrics", "how is", "how are", "what's happening"}},
	}
}

type Config struct {
	Taxonomy Taxonomy
	// FallbackType is reported for utterances nothing matched.
	FallbackType string
	// ContextBias is added to the previous intent while the conversation is young.
	ContextBias float64
	// ContextWindow is the message count below which ContextBias applies.
	ContextWindow int
	// LowConfidence maps intent type to its threshold; DefaultLowConfidence covers the rest.
	LowConfidence        map[string]float64
	DefaultLowConfidence float64
}

func DefaultConfig() Config {
	return Config{
		Taxonomy:             DefaultTaxonomy(),
		FallbackType:         TypeTechnical,
		ContextBias:          0.15,
		ContextWindow:        5,
		LowConfidence:        map[string]float64{TypeTechnical: 0.7},
		DefaultLowConfidence: 0.4,
	}
}

// Classifier scores an utterance against the taxonomy using keyword
// containment plus conversational bias. It holds no mutable state.
type Classifier struct {
	cfg Config
}

func NewClassifier(cfg Config) *Classifier {
	if cfg.FallbackType == "" {
		cfg.FallbackType = TypeTechnical
	}
	return &Classifier{cfg: cfg}
}

// Scores returns the raw score per intent in taxonomy order.
func (c *Classifier) Scores(text string, ctx state.Context) []float64 {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))

	scores := make([]float64, len(c.cfg.Taxonomy))
	for i, def := range c.cfg.Taxonomy {
		score := 0.0
		matches := 0
		for _, kw := range def.Keywords {
			if kw == "" || !strings.Contains(lower, kw) {
				continue
			}
			if utf8.RuneCountInString(kw) > longKeywordRunes {
				score += longKeywordWeight
			} else {
				score += shortKeywordWeight
			}
			matches++
		}

		// Short utterances are more focused; several hits reinforce each other.
		if matches > 0 && wordCount > 0 {
			score *= 1 + 1/float64(wordCount)
		}
		if matches > 1 {
			score *= 1 + multiMatchStep*float64(matches)
		}
		if ctx.LastIntent == def.Name && ctx.MessageCount < c.cfg.ContextWindow {
			score += c.cfg.ContextBias
		}
		if ctx.HasTopic(def.Name) {
			score += topicBonusPerItem * float64(min(len(ctx.TopicHistory), maxTopicBonusItems))
		}
		scores[i] = score
	}
	return scores
}

// Classify picks the intent for text and returns it with the updated context.
// The input context is not modified.
func (c *Classifier) Classify(text string, entities []entity.Entity, mood sentiment.Sentiment, ctx state.Context) (Intent, state.Context) {
	next := ctx.Clone()
	next.MergeEntities(entities)

	bestType, bestScore := "", 0.0
	for i, score := range c.Scores(text, ctx) {
		if score > bestScore {
			bestType, bestScore = c.cfg.Taxonomy[i].Name, score
		}
	}

	// A winner sitting exactly on the floor is accepted.
	if bestType == "" || bestScore < minWinningScore {
		next.FailedIntentCount++
		return Intent{Type: c.cfg.FallbackType, Confidence: FallbackConfidence, Entities: entities}, next
	}

	result := Intent{
		Type:       bestType,
		Confidence: math.Min(maxConfidence, bestScore+confidenceOffset),
		Entities:   entities,
	}

	if c.IsLowConfidence(result) {
		next.FailedIntentCount++
	} else {
		next.FailedIntentCount = 0
	}
	next.LastIntent = bestType
	next.MessageCount++
	next.LastUserSentiment = mood
	next.RecordTopic(bestType)

	return result, next
}

// IsLowConfidence reports whether in falls below the threshold for its type.
func (c *Classifier) IsLowConfidence(in Intent) bool {
	threshold, ok := c.cfg.LowConfidence[in.Type]
	if !ok {
		threshold = c.cfg.DefaultLowConfidence
	}
	return in.Confidence < threshold
}

func (c *Classifier) Taxonomy() Taxonomy {
	return c.cfg.Taxonomy
}
