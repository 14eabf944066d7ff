package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/studio-pro/internal/infrastructure/cache"
	"github.com/tu-usuario/studio-pro/pkg/config"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(time.Minute)

	_, ok := c.Get(ctx, "stats:finance")
	assert.False(t, ok, "miss en cache vacío")

	c.Set(ctx, "stats:finance", []byte(`{"balance":"10"}`))
	got, ok := c.Get(ctx, "stats:finance")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"balance":"10"}`), got)
}

func TestMemoryCache_Expira(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(10 * time.Millisecond)

	c.Set(ctx, "k", []byte("v"))
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok, "los valores expiran tras el TTL")
}

// Una mutación de libro/sesiones invalida todas las vistas del prefijo stats:
func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(time.Minute)

	c.Set(ctx, "stats:finance", []byte("a"))
	c.Set(ctx, "stats:dashboard:ADMIN", []byte("b"))
	c.Set(ctx, "otra:clave", []byte("c"))

	c.DeleteByPrefix(ctx, "stats:")

	_, ok := c.Get(ctx, "stats:finance")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "stats:dashboard:ADMIN")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "otra:clave")
	assert.True(t, ok, "otros prefijos no se ven afectados")
}

func TestNew_SinRedisUsaMemoria(t *testing.T) {
	c, err := cache.New(config.CacheConfig{RedisURL: "", TTLSeconds: 30})
	assert.NoError(t, err)
	assert.IsType(t, &cache.MemoryCache{}, c)
	assert.NoError(t, c.Close())
}
