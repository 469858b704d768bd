package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"checklist-sync/internal/model"
	"checklist-sync/internal/task/repository"
	"checklist-sync/pkg/log"
)

type entry struct {
	task model.Task
	seq  uint64 // Creation order, used for listing
}

type implRepository struct {
	cache *lru.Cache[string, entry]
	seq   atomic.Uint64
	l     log.Logger

	// mu serializes writes. UpdateTask reads then re-adds an entry, and an
	// eviction by a concurrent CreateTask in between would resurrect it.
	mu sync.Mutex
}

// New creates an in-memory Repository that keeps at most capacity tasks.
// When full, the least recently used task is evicted.
func New(capacity int, l log.Logger) (repository.Repository, error) {
	r := &implRepository{l: l}

	cache, err := lru.NewWithEvict[string, entry](capacity, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("task/repository/memory: %w", err)
	}
	r.cache = cache
	return r, nil
}

// onEvict runs for capacity evictions and explicit removals alike.
func (r *implRepository) onEvict(id string, _ entry) {
	r.l.Debugf(context.Background(), "%s: dropped task %s", r.dsn("onEvict"), id)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
