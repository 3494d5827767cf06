package usecases

import (
	"context"
	"sync"

	"tasksync/internal/domain/listener"
	"tasksync/internal/shared/logger"
)

// ColumnCache memoizes the tickets table column set. Schema lookups
// only need to happen once per process; a failed lookup is retried on
// the next request instead of being cached.
type ColumnCache struct {
	repo   listener.Repository
	logger logger.Interface

	mu      sync.RWMutex
	columns map[string]bool
}

func NewColumnCache(repo listener.Repository, logger logger.Interface) *ColumnCache {
	return &ColumnCache{repo: repo, logger: logger}
}

func (c *ColumnCache) TicketColumns(ctx context.Context) (map[string]bool, error) {
	c.mu.RLock()
	cached := c.columns
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	columns, err := c.repo.ListTicketColumns(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.columns == nil {
		c.columns = columns
	}
	cached = c.columns
	c.mu.Unlock()
	return cached, nil
}
