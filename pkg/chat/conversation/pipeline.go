package conversation

import (
	"devonn-assistant-be/pkg/chat/response"
	"devonn-assistant-be/pkg/nlu/entity"
	"devonn-assistant-be/pkg/nlu/fallback"
	"devonn-assistant-be/pkg/nlu/intent"
	"devonn-assistant-be/pkg/nlu/sentiment"
)

// Pipeline groups the stateless stages a turn runs through.
type Pipeline struct {
	Extractor  *entity.Extractor
	Analyzer   *sentiment.Analyzer
	Classifier *intent.Classifier
	Generator  *response.Generator
}

// DefaultPipeline wires every stage with its built-in vocabulary.
func DefaultPipeline() Pipeline {
	return Pipeline{
		Extractor:  entity.NewExtractor(entity.DefaultVocabulary()),
		Analyzer:   sentiment.NewAnalyzer(sentiment.DefaultLexicon()),
		Classifier: intent.NewClassifier(intent.DefaultConfig()),
		Generator:  response.NewGenerator(fallback.NewManager(fallback.DefaultStrategy())),
	}
}
