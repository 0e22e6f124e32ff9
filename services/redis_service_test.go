package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/models"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

// A missing key is not an error, but it leaves the target untouched; callers
// must not mistake the untouched zero value for a cached result.
func TestGetFromRedisMissLeavesTargetUntouched(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	var projects []models.Project
	err := GetFromRedis(ctx, client, "projects:active", &projects)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRedisRoundTrip(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	stored := []models.Project{{SiteName: "Riverside Towers", Status: "active"}}
	require.NoError(t, SetToRedis(ctx, client, "projects:active", stored, 5*time.Minute))

	var loaded []models.Project
	require.NoError(t, GetFromRedis(ctx, client, "projects:active", &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "Riverside Towers", loaded[0].SiteName)

	require.NoError(t, DeleteFromRedis(ctx, client, "projects:active"))

	var afterDelete []models.Project
	require.NoError(t, GetFromRedis(ctx, client, "projects:active", &afterDelete))
	assert.Empty(t, afterDelete)
}
