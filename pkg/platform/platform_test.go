package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentSummary(t *testing.T) {
	d := NewDeploymentTracker()
	assert.Equal(t, "Not connected to any cluster. 0/0 steps completed. ", d.DeploymentSummary())

	d.SetConnected(true)
	d.SetDeploying(true)
	d.SetSteps([]DeploymentStep{
		{Name: "build", Status: StepSuccess},
		{Name: "push", Status: StepError},
		{Name: "rollout", Status: StepPending},
	})
	d.SetServices([]ServiceState{{Name: "api", Status: "running"}, {Name: "worker", Status: "stopped"}})

	assert.True(t, d.IsConnected())
	assert.Equal(t,
		"Connected to cluster. Deployment in progress. 1/3 steps completed. 1 step(s) failed. 1/2 services running.",
		d.DeploymentSummary())
}

func TestAPIRegistry(t *testing.T) {
	r := NewAPIRegistry()
	assert.False(t, r.IsAnyConnected())

	r.Upsert(APIConfig{Name: "billing", Endpoint: "https://billing"})
	r.Upsert(APIConfig{Name: "search", Endpoint: "https://search"})
	assert.False(t, r.IsAnyConnected())

	r.Upsert(APIConfig{Name: "billing", Endpoint: "https://billing/v2", IsConnected: true})
	configs := r.APIConfigs()
	require.Len(t, configs, 2)
	assert.Equal(t, "https://billing/v2", configs[0].Endpoint)
	assert.True(t, r.IsAnyConnected())

	configs[0].Name = "mutated"
	assert.Equal(t, "billing", r.APIConfigs()[0].Name)

	assert.True(t, r.Remove("billing"))
	assert.False(t, r.Remove("billing"))
	assert.False(t, r.IsAnyConnected())
}

func TestProcessRegistry(t *testing.T) {
	r := NewProcessRegistry()

	p := r.Upsert(Process{Name: "index", Status: ProcessRunning})
	require.NotEmpty(t, p.ID)
	assert.False(t, p.StartedAt.IsZero())
	assert.Nil(t, p.EndedAt)

	r.Upsert(Process{Name: "sync", Status: ProcessCompleted})
	running, total := r.ProcessCounts()
	assert.Equal(t, 1, running)
	assert.Equal(t, 2, total)

	p.Status = ProcessFailed
	p = r.Upsert(p)
	assert.NotNil(t, p.EndedAt)
	running, _ = r.ProcessCounts()
	assert.Equal(t, 0, running)

	assert.True(t, r.Remove(p.ID))
	assert.Len(t, r.Processes(), 1)
}
