package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest []string
	assert.ErrorIs(t, repo.Get(ctx, "students:class:TY", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "students:class:TY", []string{"a"}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "students:*"))
	assert.NoError(t, repo.Close())
}
