package service

import (
	"context"
	"errors"
	"testing"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/pkg/platform"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() {
	c.calls++
}

func TestPlatformService(t *testing.T) {
	cache := &countingInvalidator{}
	svc := NewPlatformService(
		platform.NewDeploymentTracker(),
		platform.NewAPIRegistry(),
		platform.NewProcessRegistry(),
		cache,
		logger.NewNopLogger(),
	)
	ctx := context.Background()

	connected := true
	state := svc.UpdateDeployment(ctx, &dto.UpdateDeploymentRequest{IsConnected: &connected})
	assert.True(t, state.IsClusterConnected)
	assert.Equal(t, 1, cache.calls)

	apis := svc.UpsertAPI(ctx, &platform.APIConfig{Name: "billing", Endpoint: "https://billing.local", IsConnected: true})
	require.Len(t, apis, 1)
	assert.Equal(t, 2, cache.calls)

	proc := svc.UpsertProcess(ctx, &platform.Process{Name: "sync", Status: platform.ProcessRunning})
	assert.NotEmpty(t, proc.ID)
	assert.Equal(t, 2, cache.calls)

	state = svc.State(ctx)
	assert.Equal(t, 1, state.RunningProcesses)
	assert.Equal(t, 1, state.TotalProcesses)

	require.NoError(t, svc.RemoveProcess(ctx, proc.ID))
	require.NoError(t, svc.RemoveAPI(ctx, "billing"))

	var fiberErr *fiber.Error
	err := svc.RemoveAPI(ctx, "billing")
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)

	err = svc.RemoveProcess(ctx, proc.ID)
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
