package entity

import "regexp"

type Type string

const (
	TypeService    Type = "service"
	TypePlatform   Type = "platform"
	TypeAction     Type = "action"
	TypeTimePeriod Type = "time_period"
	TypeNumber     Type = "number"
)

// Span is a half-open byte range [Start, End) into the analysed text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Entity struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
	Span  Span   `json:"span"`
}

// Vocabulary lists the recognised terms per entity type, in match order.
type Vocabulary struct {
	Services    []string
	Platforms   []string
	Actions     []string
	TimePeriods []string
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Services:    []string{"kubernetes", "k8s", "istio", "prometheus", "grafana", "jaeger", "kong", "argo", "helm"},
		Platforms:   []string{"aws", "gcp", "azure", "google cloud", "amazon", "microsoft", "digital ocean", "heroku", "vercel"},
		Actions:     []string{"create", "update", "delete", "deploy", "monitor", "integrate", "connect", "install", "configure"},
		TimePeriods: []string{"today", "yesterday", "this week", "last week", "this month", "last month"},
	}
}

type termMatcher struct {
	kind  Type
	value string
	re    *regexp.Regexp
}

// Extractor finds vocabulary terms and standalone numerals in free text.
// It is safe for concurrent use.
type Extractor struct {
	matchers []termMatcher
	numeral  *regexp.Regexp
}

func NewExtractor(vocab Vocabulary) *Extractor {
	e := &Extractor{numeral: regexp.MustCompile(`\b\d+\b`)}
	e.add(TypeService, vocab.Services)
	e.add(TypePlatform, vocab.Platforms)
	e.add(TypeAction, vocab.Actions)
	e.add(TypeTimePeriod, vocab.TimePeriods)
	return e
}

func (e *Extractor) add(kind Type, terms []string) {
	for _, term := range terms {
		if term == "" {
			continue
		}
		e.matchers = append(e.matchers, termMatcher{
			kind:  kind,
			value: term,
			re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
}

// Extract returns every whole-word occurrence of a vocabulary term followed by
// every numeral. Vocabulary entities carry the canonical lowercase term, numerals
// carry the matched digits. The result is never nil.
func (e *Extractor) Extract(text string) []Entity {
	found := make([]Entity, 0)
	if text == "" {
		return found
	}

	for _, m := range e.matchers {
		for _, loc := range m.re.FindAllStringIndex(text, -1) {
			found = append(found, Entity{
				Type:  m.kind,
				Value: m.value,
				Span:  Span{Start: loc[0], End: loc[1]},
			})
		}
	}

	for _, loc := range e.numeral.FindAllStringIndex(text, -1) {
		found = append(found, Entity{
			Type:  TypeNumber,
			Value: text[loc[0]:loc[1]],
			Span:  Span{Start: loc[0], End: loc[1]},
		})
	}

	return found
}

// Values returns the distinct values of the given type, in first-seen order.
func Values(entities []Entity, kind Type) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ent := range entities {
		if ent.Type != kind {
			continue
		}
		if _, ok := seen[ent.Value]; ok {
			continue
		}
		seen[ent.Value] = struct{}{}
		out = append(out, ent.Value)
	}
	return out
}
