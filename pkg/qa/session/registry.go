package session

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"penai-be/pkg/qa/tracker"
)

// Registry owns every live conversation tracker, keyed by session id.
// Idle sessions expire after an hour so abandoned voice widgets don't
// accumulate forever.
type Registry struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewRegistry() *Registry {
	// Default expiration 1 hour, expired entries purged every 10 minutes.
	return &Registry{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// GetOrCreate returns the tracker for a session, creating it on first
// reference. Access slides the expiry window. The registry lock makes
// creation race-free when duplicate requests land simultaneously.
func (r *Registry) GetOrCreate(sessionID, familyID string) *tracker.Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		trk := x.(*tracker.Tracker)
		r.cache.Set(sessionID, trk, cache.DefaultExpiration)
		return trk
	}

	trk := tracker.New(sessionID, familyID)
	r.cache.Set(sessionID, trk, cache.DefaultExpiration)
	return trk
}

// Get returns the tracker for a session without creating one.
func (r *Registry) Get(sessionID string) (*tracker.Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(*tracker.Tracker), true
	}
	return nil, false
}

// Delete drops a session's tracker.
func (r *Registry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionID)
}
