package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/cache"
	"github.com/jhoicas/pg-hostel-api/pkg/config"
)

func setupTestRedis(t *testing.T) (*cache.NoticeCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewNoticeCache(client, time.Minute), mr
}

func TestNoticeCache_SetGetInvalidate(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	_, version, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(0), version)

	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	require.NoError(t, c.Set(ctx, version, []*entity.Notice{
		{ID: "n2", Title: "Wi-Fi", Content: "Nueva clave", CreatedBy: "Owner", CreatedAt: at},
		{ID: "n1", Title: "Agua", Content: "Corte", CreatedBy: "Owner", CreatedAt: at.Add(-time.Hour)},
	}))

	list, _, hit, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)
	assert.True(t, at.Equal(list[0].CreatedAt))

	require.NoError(t, c.Invalidate(ctx))
	_, version, hit, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(1), version)
}

func TestNoticeCache_SetConVersionViejaNoSeLee(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	_, old, _, err := c.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, old, []*entity.Notice{{ID: "n1", Title: "viejo"}}))

	_, version, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit, "una lista guardada bajo una versión anterior no se sirve")
	assert.Equal(t, old+1, version)
}

func TestNoticeCache_Expira(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, 0, []*entity.Notice{{ID: "n1", Title: "Agua"}}))

	mr.FastForward(2 * time.Minute)

	_, _, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNoticeCache_RedisCaido(t *testing.T) {
	c, mr := setupTestRedis(t)
	mr.SetError("LOADING redis se está cargando")

	_, _, hit, err := c.Get(context.Background())
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestNewClient_SinServidor(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := cache.NewClient(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, false)
	assert.Error(t, err)
}
