package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnCacheMemoizesFirstSuccess(t *testing.T) {
	calls := 0
	repo := &mockRepository{
		ListTicketColumnsFunc: func(ctx context.Context) (map[string]bool, error) {
			calls++
			return map[string]bool{"headline": true, "storypoints": true}, nil
		},
	}
	cache := NewColumnCache(repo, &mockLogger{})

	first, err := cache.TicketColumns(context.Background())
	require.NoError(t, err)
	second, err := cache.TicketColumns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.True(t, first["storypoints"])
	assert.Equal(t, first, second)
}

func TestColumnCacheRetriesAfterFailure(t *testing.T) {
	calls := 0
	repo := &mockRepository{
		ListTicketColumnsFunc: func(ctx context.Context) (map[string]bool, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("schema query failed")
			}
			return map[string]bool{"headline": true}, nil
		},
	}
	cache := NewColumnCache(repo, &mockLogger{})

	_, err := cache.TicketColumns(context.Background())
	require.Error(t, err)

	columns, err := cache.TicketColumns(context.Background())
	require.NoError(t, err)
	assert.True(t, columns["headline"])
	assert.Equal(t, 2, calls)
}
