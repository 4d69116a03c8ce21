package portal

import (
	"context"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Factory builds the portal for a client id seen for the first time.
type Factory func(clientID string) *Portal

// Registry keeps the live portals, one per client id. The least recently
// used portal is disposed once the registry is full, and idle portals are
// swept on an interval.
type Registry struct {
	factory Factory
	idle    time.Duration
	log     *zap.Logger

	mu     sync.Mutex
	cache  *lru.Cache[string, *Portal]
	stop   chan struct{}
	closed sync.Once
}

func NewRegistry(size int, idle time.Duration, factory Factory, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		factory: factory,
		idle:    idle,
		log:     logger,
		stop:    make(chan struct{}),
	}
	cache, err := lru.NewWithEvict[string, *Portal](size, r.onEvict)
	if err != nil {
		return nil, exceptions.ErrPortalCreate(err)
	}
	r.cache = cache

	if idle > 0 {
		go r.sweep(idle / 2)
	}
	return r, nil
}

// Acquire returns the client's portal, creating and restoring it on first
// use.
func (r *Registry) Acquire(ctx context.Context, clientID string) (*Portal, error) {
	if clientID == "" {
		return nil, exceptions.ErrClientIDMissing()
	}

	portal, ok := r.cache.Get(clientID)
	if !ok || portal.Disposed() {
		r.mu.Lock()
		portal, ok = r.cache.Get(clientID)
		if !ok || portal.Disposed() {
			portal = r.factory(clientID)
			r.cache.Add(clientID, portal)
			r.log.Info("portal created",
				append(utils.RequestFields(ctx), zap.Int(constvars.LoggingRegistrySize, r.cache.Len()))...,
			)
		}
		r.mu.Unlock()
	}

	if err := portal.Restore(ctx); err != nil {
		return nil, err
	}
	return portal, nil
}

func (r *Registry) Len() int {
	return r.cache.Len()
}

// Release drops the client's portal, disposing it.
func (r *Registry) Release(clientID string) {
	r.cache.Remove(clientID)
}

// Close stops the sweeper and disposes every portal.
func (r *Registry) Close() {
	r.closed.Do(func() {
		close(r.stop)
		r.cache.Purge()
	})
}

func (r *Registry) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.evictIdle(now)
		}
	}
}

func (r *Registry) evictIdle(now time.Time) {
	for _, clientID := range r.cache.Keys() {
		portal, ok := r.cache.Peek(clientID)
		if ok && portal.IdleFor(now) >= r.idle {
			r.cache.Remove(clientID)
		}
	}
}

func (r *Registry) onEvict(clientID string, portal *Portal) {
	portal.Dispose()
	r.log.Debug("portal evicted", zap.String(constvars.LoggingClientIDKey, clientID))
}
