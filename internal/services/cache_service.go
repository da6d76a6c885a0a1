package services

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"go.uber.org/zap"
)

// cacheEntry representa uma entrada no cache
type cacheEntry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache implementa um cache LRU (Least Recently Used) thread-safe com TTL deslizante:
// cada leitura renova a expiração da entrada
type LRUCache[V any] struct {
	capacity int
	ttl      time.Duration
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List
	onEvict  func(key string, value V)
	now      func() time.Time
}

// NewLRUCache cria um cache LRU. onEvict, se informado, é chamado fora do lock
// para cada entrada removida por expiração, capacidade ou Delete.
func NewLRUCache[V any](capacity int, ttl time.Duration, onEvict func(key string, value V)) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
		onEvict:  onEvict,
		now:      time.Now,
	}
}

// Get recupera um valor do cache e renova sua expiração
func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V
	var evicted []*cacheEntry[V]

	c.mu.Lock()
	element, found := c.cache[key]
	if !found {
		c.mu.Unlock()
		return zero, false
	}

	entry := element.Value.(*cacheEntry[V])
	if c.now().After(entry.expiration) {
		evicted = append(evicted, c.removeElement(element))
		c.mu.Unlock()
		c.notify(evicted)
		return zero, false
	}

	entry.expiration = c.now().Add(c.ttl)
	c.lruList.MoveToBack(element)
	c.mu.Unlock()
	return entry.value, true
}

// Set adiciona ou atualiza um valor no cache
func (c *LRUCache[V]) Set(key string, value V) {
	var evicted []*cacheEntry[V]

	c.mu.Lock()
	expiration := c.now().Add(c.ttl)

	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry[V])
		entry.value = value
		entry.expiration = expiration
		c.mu.Unlock()
		return
	}

	// Se o cache está cheio, remover o item menos recentemente usado
	for c.lruList.Len() >= c.capacity {
		evicted = append(evicted, c.removeElement(c.lruList.Front()))
	}

	element := c.lruList.PushBack(&cacheEntry[V]{key: key, value: value, expiration: expiration})
	c.cache[key] = element
	c.mu.Unlock()

	c.notify(evicted)
}

// Delete remove um item do cache. Retorna false se a chave não existia.
func (c *LRUCache[V]) Delete(key string) bool {
	c.mu.Lock()
	element, found := c.cache[key]
	if !found {
		c.mu.Unlock()
		return false
	}
	entry := c.removeElement(element)
	c.mu.Unlock()

	c.notify([]*cacheEntry[V]{entry})
	return true
}

// Size retorna o número de itens no cache
func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lruList.Len()
}

// removeElement remove um elemento da lista e do mapa (deve ser chamado com lock)
func (c *LRUCache[V]) removeElement(element *list.Element) *cacheEntry[V] {
	c.lruList.Remove(element)
	entry := element.Value.(*cacheEntry[V])
	delete(c.cache, entry.key)
	return entry
}

func (c *LRUCache[V]) notify(evicted []*cacheEntry[V]) {
	if c.onEvict == nil {
		return
	}
	for _, entry := range evicted {
		c.onEvict(entry.key, entry.value)
	}
}

// CleanupExpired remove todos os itens expirados do cache
func (c *LRUCache[V]) CleanupExpired() int {
	var evicted []*cacheEntry[V]

	c.mu.Lock()
	now := c.now()
	var next *list.Element
	for element := c.lruList.Front(); element != nil; element = next {
		next = element.Next()
		if now.After(element.Value.(*cacheEntry[V]).expiration) {
			evicted = append(evicted, c.removeElement(element))
		}
	}
	c.mu.Unlock()

	c.notify(evicted)
	return len(evicted)
}

// StartCleanupRoutine inicia uma rotina de limpeza periódica até o contexto ser cancelado
func (c *LRUCache[V]) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.CleanupExpired(); removed > 0 {
					observability.Logger().Debug("limpeza do cache", zap.Int("removidos", removed))
				}
			}
		}
	}()
}
