package memory

import (
	"time"

	"devonn-assistant-be/pkg/chat/conversation"
	"devonn-assistant-be/pkg/chat/response"

	"github.com/patrickmn/go-cache"
)

const snapshotKey = "platform_snapshot"

// SnapshotRepository caches the platform snapshot replies are rendered
// against. Writers to the platform registries call Invalidate.
type SnapshotRepository struct {
	cache  *cache.Cache
	source conversation.SnapshotSource
}

func NewSnapshotRepository(source conversation.SnapshotSource, ttl, cleanupInterval time.Duration) *SnapshotRepository {
	return &SnapshotRepository{
		cache:  cache.New(ttl, cleanupInterval),
		source: source,
	}
}

func (r *SnapshotRepository) Snapshot() response.Snapshot {
	if x, found := r.cache.Get(snapshotKey); found {
		return x.(response.Snapshot)
	}
	snap := r.source.Snapshot()
	r.cache.Set(snapshotKey, snap, cache.DefaultExpiration)
	return snap
}

func (r *SnapshotRepository) Invalidate() {
	r.cache.Delete(snapshotKey)
}
