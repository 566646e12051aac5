package conversation

import (
	"context"
	"fmt"

	"devonn-assistant-be/pkg/chat/response"
	"devonn-assistant-be/pkg/events"
	"devonn-assistant-be/pkg/platform"
)

type DeploymentProvider interface {
	DeploymentSummary() string
	IsConnected() bool
}

type APIRegistry interface {
	APIConfigs() []platform.APIConfig
}

type ProcessRegistry interface {
	ProcessCounts() (running, total int)
}

// SnapshotSource supplies the platform state a reply is generated against.
type SnapshotSource interface {
	Snapshot() response.Snapshot
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// ProviderSnapshot reads a fresh snapshot from the providers on every call.
// Nil providers read as disconnected and empty.
type ProviderSnapshot struct {
	Deployment DeploymentProvider
	APIs       APIRegistry
}

func (p ProviderSnapshot) Snapshot() response.Snapshot {
	var snap response.Snapshot
	if p.Deployment != nil {
		snap.DeploymentSummary = p.Deployment.DeploymentSummary()
		snap.IsClusterConnected = p.Deployment.IsConnected()
	}
	if p.APIs != nil {
		snap.APIConfigs = p.APIs.APIConfigs()
	}
	return snap
}

func processCount(r ProcessRegistry) string {
	if r == nil {
		return "0/0"
	}
	running, total := r.ProcessCounts()
	return fmt.Sprintf("%d/%d", running, total)
}
