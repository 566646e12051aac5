package memory

import (
	"testing"
	"time"

	"devonn-assistant-be/pkg/chat/response"

	"github.com/stretchr/testify/assert"
)

type countingSource struct {
	calls int
}

func (s *countingSource) Snapshot() response.Snapshot {
	s.calls++
	return response.Snapshot{DeploymentSummary: "call", IsClusterConnected: s.calls%2 == 1}
}

func TestSnapshotRepositoryCachesUntilInvalidated(t *testing.T) {
	src := &countingSource{}
	repo := NewSnapshotRepository(src, time.Minute, time.Minute)

	first := repo.Snapshot()
	second := repo.Snapshot()
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)

	repo.Invalidate()
	third := repo.Snapshot()
	assert.Equal(t, 2, src.calls)
	assert.False(t, third.IsClusterConnected)
}

func TestSnapshotRepositoryExpires(t *testing.T) {
	src := &countingSource{}
	repo := NewSnapshotRepository(src, 10*time.Millisecond, time.Minute)

	repo.Snapshot()
	time.Sleep(20 * time.Millisecond)
	repo.Snapshot()
	assert.Equal(t, 2, src.calls)
}
