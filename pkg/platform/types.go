package platform

import "time"

type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepRunning StepStatus = "running"
	StepSuccess StepStatus = "success"
	StepError   StepStatus = "error"
)

type DeploymentStep struct {
	Name   string     `json:"name" validate:"required"`
	Status StepStatus `json:"status" validate:"required,oneof=pending running success error"`
}

type ServiceState struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type APIConfig struct {
	Name        string `json:"name" validate:"required"`
	Endpoint    string `json:"endpoint" validate:"required"`
	IsConnected bool   `json:"is_connected"`
}

type ProcessStatus string

const (
	ProcessRunning   ProcessStatus = "running"
	ProcessCompleted ProcessStatus = "completed"
	ProcessFailed    ProcessStatus = "failed"
	ProcessPaused    ProcessStatus = "paused"
)

type Process struct {
	ID        string        `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Status    ProcessStatus `json:"status" validate:"required,oneof=running completed failed paused"`
	Progress  int           `json:"progress" validate:"gte=0,lte=100"`
	Message   string        `json:"message,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   *time.Time    `json:"ended_at,omitempty"`
}
