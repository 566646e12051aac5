package platform

import (
	"fmt"
	"strings"
	"sync"
)

// DeploymentTracker holds the cluster connection and deployment progress.
type DeploymentTracker struct {
	mu        sync.RWMutex
	connected bool
	deploying bool
	steps     []DeploymentStep
	services  []ServiceState
}

func NewDeploymentTracker() *DeploymentTracker {
	return &DeploymentTracker{}
}

func (d *DeploymentTracker) SetConnected(connected bool) {
	d.mu.Lock()
	d.connected = connected
	d.mu.Unlock()
}

func (d *DeploymentTracker) SetDeploying(deploying bool) {
	d.mu.Lock()
	d.deploying = deploying
	d.mu.Unlock()
}

func (d *DeploymentTracker) SetSteps(steps []DeploymentStep) {
	d.mu.Lock()
	d.steps = append([]DeploymentStep(nil), steps...)
	d.mu.Unlock()
}

func (d *DeploymentTracker) SetServices(services []ServiceState) {
	d.mu.Lock()
	d.services = append([]ServiceState(nil), services...)
	d.mu.Unlock()
}

func (d *DeploymentTracker) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// DeploymentSummary renders a one-line human readable status.
func (d *DeploymentTracker) DeploymentSummary() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	if d.connected {
		b.WriteString("Connected to cluster. ")
	} else {
		b.WriteString("Not connected to any cluster. ")
	}
	if d.deploying {
		b.WriteString("Deployment in progress. ")
	}

	completed, failed := 0, 0
	for _, s := range d.steps {
		switch s.Status {
		case StepSuccess:
			completed++
		case StepError:
			failed++
		}
	}
	fmt.Fprintf(&b, "%d/%d steps completed. ", completed, len(d.steps))
	if failed > 0 {
		fmt.Fprintf(&b, "%d step(s) failed. ", failed)
	}

	if len(d.services) > 0 {
		running := 0
		for _, s := range d.services {
			if s.Status == "running" {
				running++
			}
		}
		fmt.Fprintf(&b, "%d/%d services running.", running, len(d.services))
	}
	return b.String()
}
