package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache es un caché en memoria con expiración por entrada
type Cache struct {
	items *gocache.Cache
	ttl   time.Duration
}

// New crea un caché con el TTL por defecto; los expirados se limpian cada 5 minutos
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		items: gocache.New(defaultTTL, 5*time.Minute),
		ttl:   defaultTTL,
	}
}

// Set guarda un valor en caché
func (c *Cache) Set(key string, value any, ttl ...time.Duration) {
	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}
	c.items.Set(key, value, duration)
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (any, bool) {
	return c.items.Get(key)
}

func (c *Cache) Delete(key string) {
	c.items.Delete(key)
}
