package response

import (
	"devonn-assistant-be/pkg/chat/message"
	"devonn-assistant-be/pkg/chat/state"
	"devonn-assistant-be/pkg/nlu/entity"
	"devonn-assistant-be/pkg/nlu/fallback"
	"devonn-assistant-be/pkg/nlu/intent"
	"devonn-assistant-be/pkg/platform"
)

// ProcessCountPlaceholder is left in status replies for the caller to fill
// with the live "running/total" process count.
const ProcessCountPlaceholder = "[processCount]"

// Snapshot is the external platform state a reply may describe.
type Snapshot struct {
	DeploymentSummary  string
	IsClusterConnected bool
	APIConfigs         []platform.APIConfig
}

func (s Snapshot) ConnectedAPIs() int {
	n := 0
	for _, c := range s.APIConfigs {
		if c.IsConnected {
			n++
		}
	}
	return n
}

// Request carries everything one reply is built from.
type Request struct {
	Intent    intent.Intent
	Utterance string
	Context   state.Context
	Snapshot  Snapshot
}

type template func(req Request, mentions mentions) message.Draft

type mentions struct {
	services  []string
	platforms []string
	actions   []string
}

// Generator turns a classified intent into a reply draft. Buttons carry
// pending actions only; binding them is left to the caller.
type Generator struct {
	fallback  *fallback.Manager
	templates map[string]template
}

func NewGenerator(fb *fallback.Manager) *Generator {
	return &Generator{
		fallback: fb,
		templates: map[string]template{
			intent.TypeGreeting:   greeting,
			intent.TypeHelp:       help,
			intent.TypePricing:    pricing,
			intent.TypeFeatures:   features,
			intent.TypeDeployment: deployment,
			intent.TypeAPI:        api,
			intent.TypeStatus:     status,
			intent.TypeTechnical:  technical,
			intent.TypeFarewell:   farewell,
		},
	}
}

func (g *Generator) Generate(req Request) message.Draft {
	if g.fallback != nil {
		if text, ok := g.fallback.Get(req.Context.FailedIntentCount); ok {
			return message.Draft{Content: text, Kind: message.KindText, Fallback: true}
		}
	}

	m := mentions{
		services:  entity.Values(req.Intent.Entities, entity.TypeService),
		platforms: entity.Values(req.Intent.Entities, entity.TypePlatform),
		actions:   entity.Values(req.Intent.Entities, entity.TypeAction),
	}

	tmpl, ok := g.templates[req.Intent.Type]
	if !ok {
		tmpl = unrecognized
	}
	d := tmpl(req, m)
	if d.Kind == "" {
		d.Kind = message.KindText
	}
	return d
}
