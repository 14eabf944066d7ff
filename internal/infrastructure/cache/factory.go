package cache

import (
	"time"

	"github.com/tu-usuario/studio-pro/pkg/config"
)

// New construye el view cache según configuración: Redis si hay REDIS_URL,
// memoria de proceso si no.
func New(cfg config.CacheConfig) (Cacher, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	if cfg.RedisURL != "" {
		return NewRedis(cfg.RedisURL, ttl)
	}
	return NewMemory(ttl), nil
}
