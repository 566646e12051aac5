package service

import (
	"context"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/pkg/platform"

	"github.com/gofiber/fiber/v2"
)

// SnapshotInvalidator drops a cached platform snapshot.
type SnapshotInvalidator interface {
	Invalidate()
}

type IPlatformService interface {
	State(ctx context.Context) *dto.PlatformStateResponse
	UpdateDeployment(ctx context.Context, req *dto.UpdateDeploymentRequest) *dto.PlatformStateResponse
	UpsertAPI(ctx context.Context, req *platform.APIConfig) []platform.APIConfig
	RemoveAPI(ctx context.Context, name string) error
	UpsertProcess(ctx context.Context, req *platform.Process) platform.Process
	RemoveProcess(ctx context.Context, id string) error
}

type platformService struct {
	deployment *platform.DeploymentTracker
	apis       *platform.APIRegistry
	processes  *platform.ProcessRegistry
	cache      SnapshotInvalidator
	logger     logger.ILogger
}

func NewPlatformService(
	deployment *platform.DeploymentTracker,
	apis *platform.APIRegistry,
	processes *platform.ProcessRegistry,
	cache SnapshotInvalidator,
	log logger.ILogger,
) IPlatformService {
	return &platformService{
		deployment: deployment,
		apis:       apis,
		processes:  processes,
		cache:      cache,
		logger:     log,
	}
}

func (s *platformService) State(ctx context.Context) *dto.PlatformStateResponse {
	running, total := s.processes.ProcessCounts()
	return &dto.PlatformStateResponse{
		DeploymentSummary:  s.deployment.DeploymentSummary(),
		IsClusterConnected: s.deployment.IsConnected(),
		APIs:               s.apis.APIConfigs(),
		Processes:          s.processes.Processes(),
		RunningProcesses:   running,
		TotalProcesses:     total,
	}
}

func (s *platformService) UpdateDeployment(ctx context.Context, req *dto.UpdateDeploymentRequest) *dto.PlatformStateResponse {
	if req.IsConnected != nil {
		s.deployment.SetConnected(*req.IsConnected)
	}
	if req.IsDeploying != nil {
		s.deployment.SetDeploying(*req.IsDeploying)
	}
	if req.Steps != nil {
		s.deployment.SetSteps(req.Steps)
	}
	if req.Services != nil {
		s.deployment.SetServices(req.Services)
	}
	s.invalidate("deployment")
	return s.State(ctx)
}

func (s *platformService) UpsertAPI(ctx context.Context, req *platform.APIConfig) []platform.APIConfig {
	s.apis.Upsert(*req)
	s.invalidate("api")
	return s.apis.APIConfigs()
}

func (s *platformService) RemoveAPI(ctx context.Context, name string) error {
	if !s.apis.Remove(name) {
		return fiber.NewError(fiber.StatusNotFound, "api not found")
	}
	s.invalidate("api")
	return nil
}

// Process counts are read live by the status reply and never cached.
func (s *platformService) UpsertProcess(ctx context.Context, req *platform.Process) platform.Process {
	return s.processes.Upsert(*req)
}

func (s *platformService) RemoveProcess(ctx context.Context, id string) error {
	if !s.processes.Remove(id) {
		return fiber.NewError(fiber.StatusNotFound, "process not found")
	}
	return nil
}

func (s *platformService) invalidate(what string) {
	if s.cache != nil {
		s.cache.Invalidate()
	}
	s.logger.Debug("PLATFORM", "Platform state updated", map[string]interface{}{"changed": what})
}
