package platform

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// APIRegistry keeps external API configurations keyed by name.
type APIRegistry struct {
	mu      sync.RWMutex
	configs []APIConfig
}

func NewAPIRegistry() *APIRegistry {
	return &APIRegistry{}
}

// Upsert adds cfg or replaces the entry with the same name.
func (r *APIRegistry) Upsert(cfg APIConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].Name == cfg.Name {
			r.configs[i] = cfg
			return
		}
	}
	r.configs = append(r.configs, cfg)
}

func (r *APIRegistry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].Name == name {
			r.configs = append(r.configs[:i], r.configs[i+1:]...)
			return true
		}
	}
	return false
}

func (r *APIRegistry) APIConfigs() []APIConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]APIConfig{}, r.configs...)
}

func (r *APIRegistry) IsAnyConnected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.configs {
		if c.IsConnected {
			return true
		}
	}
	return false
}

// ProcessRegistry tracks background processes shown in status replies.
type ProcessRegistry struct {
	mu    sync.RWMutex
	procs []Process
	now   func() time.Time
}

func NewProcessRegistry() *ProcessRegistry {
	return &ProcessRegistry{now: time.Now}
}

// Upsert stores p, assigning an ID and start time when missing.
// Finished processes get an end time.
func (r *ProcessRegistry) Upsert(p Process) Process {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = r.now()
	}
	if p.EndedAt == nil && (p.Status == ProcessCompleted || p.Status == ProcessFailed) {
		end := r.now()
		p.EndedAt = &end
	}

	for i := range r.procs {
		if r.procs[i].ID == p.ID {
			r.procs[i] = p
			return p
		}
	}
	r.procs = append(r.procs, p)
	return p
}

func (r *ProcessRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.procs {
		if r.procs[i].ID == id {
			r.procs = append(r.procs[:i], r.procs[i+1:]...)
			return true
		}
	}
	return false
}

func (r *ProcessRegistry) Processes() []Process {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Process{}, r.procs...)
}

// ProcessCounts returns how many processes are running out of the total.
func (r *ProcessRegistry) ProcessCounts() (running, total int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.procs {
		if p.Status == ProcessRunning {
			running++
		}
	}
	return running, len(r.procs)
}
