package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/timeclock/internal/testutil"
)

func TestRedisCacheRepo(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	// Missing key reads as nil, nil.
	got, err := repo.Get(ctx, "timeclock:active:worker-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "timeclock:active:worker-1", []byte(`{"id":"log-1"}`), time.Minute))

	got, err = repo.Get(ctx, "timeclock:active:worker-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"log-1"}`), got)

	existed, err := repo.Delete(ctx, "timeclock:active:worker-1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(ctx, "timeclock:active:worker-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestRedisCacheRepo_ExpiredKey(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "timeclock:active:worker-2", []byte("x"), 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	got, err := repo.Get(ctx, "timeclock:active:worker-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_EmptyKey(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))

	_, err := repo.Get(ctx, "")
	assert.Error(t, err)

	_, err = repo.Delete(ctx, "")
	assert.Error(t, err)
}
