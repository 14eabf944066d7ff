// Package cache implementa el view cache de las vistas agregadas (stats de
// finanzas y dashboard). Las mutaciones invalidan por prefijo, el equivalente
// a revalidar las rutas afectadas en un frontend con render en servidor.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Cacher contrato del view cache. Las claves usan prefijos por vista
// (ej. "stats:finance", "stats:dashboard:ADMIN") para invalidación en grupo.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
	Close() error
}

// memoryEntry valor cacheado con su expiración.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache cache en memoria de proceso con TTL. Es el fallback cuando no
// hay Redis configurado; sirve igual de view cache en despliegues de un nodo.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
}

// NewMemory crea el cache en memoria con el TTL indicado.
func NewMemory(ttl time.Duration) *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryEntry), ttl: ttl}
}

// Get devuelve el valor si existe y no expiró.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor con el TTL por defecto.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	c.data[key] = memoryEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete elimina una clave.
func (c *MemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// DeleteByPrefix elimina todas las claves que empiecen por el prefijo.
func (c *MemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	c.mu.Lock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}

// Close no hace nada en la variante en memoria.
func (c *MemoryCache) Close() error { return nil }
