package dto

import "devonn-assistant-be/pkg/platform"

// UpdateDeploymentRequest changes only the fields that are present.
type UpdateDeploymentRequest struct {
	IsConnected *bool                     `json:"is_connected"`
	IsDeploying *bool                     `json:"is_deploying"`
	Steps       []platform.DeploymentStep `json:"steps" validate:"omitempty,dive"`
	Services    []platform.ServiceState   `json:"services" validate:"omitempty,dive"`
}

type PlatformStateResponse struct {
	DeploymentSummary  string               `json:"deployment_summary"`
	IsClusterConnected bool                 `json:"is_cluster_connected"`
	APIs               []platform.APIConfig `json:"apis"`
	Processes          []platform.Process   `json:"processes"`
	RunningProcesses   int                  `json:"running_processes"`
	TotalProcesses     int                  `json:"total_processes"`
}
