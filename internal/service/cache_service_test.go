package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServiceDisabled(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	var dest string
	hit, err := svc.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, repo.sets)
}

func TestCacheServiceRoundTripAndInvalidate(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "students:class:TY", []string{"John"}, 0))

	var dest []string
	hit, err := svc.Get(ctx, "students:class:TY", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"John"}, dest)

	require.NoError(t, svc.Invalidate(ctx, "students:*"))
	hit, err = svc.Get(ctx, "students:class:TY", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}
