package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "studio:"

var _ Cacher = (*RedisCache)(nil)

// RedisCache view cache distribuido sobre Redis, para despliegues multi-nodo.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis conecta a Redis a partir de la URL (redis://host:port/db) y valida
// la conexión con un ping.
func NewRedis(url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get devuelve el valor si existe. Errores de Redis se tratan como miss:
// el cache nunca rompe la petición, la vista se recalcula de la DB.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set guarda el valor con el TTL por defecto.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	_ = c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err()
}

// Delete elimina una clave.
func (c *RedisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, keyPrefix+key).Err()
}

// DeleteByPrefix elimina todas las claves del prefijo vía SCAN incremental
// (sin KEYS, que bloquea el servidor).
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, keyPrefix+prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if iter.Err() != nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
