package cache

import (
	"sync"
	"time"
)

// Intervalo de limpeza dos itens expirados
const janitorInterval = time.Minute

// Item representa um valor em cache com expiração
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache é um cache em memória com expiração por item. Usado para dados de
// referência lidos com frequência, como o catálogo ESG.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New cria uma nova instância de cache com limpeza periódica em background
func New() *Cache {
	cache := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(janitorInterval)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set grava um item com a duração de expiração informada
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retorna o item e um booleano indicando se foi encontrado (e não expirou)
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete remove um item do cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired remove todos os itens expirados
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear remove todos os itens do cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}
