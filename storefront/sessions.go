package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/junaidrashid-git/menu-api/analytics"
)

// Session is one browsing session on a store page: its cart and the tracker of the
// mounted page. Cart changes go through Update so each add/remove is applied whole.
type Session struct {
	ID        string
	StoreID   string
	Slug      string
	Tracker   *analytics.Tracker
	ExpiresAt time.Time

	mu   sync.Mutex
	cart Cart
}

// Cart returns the current snapshot.
func (s *Session) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Update replaces the cart with fn's result and returns it.
func (s *Session) Update(fn func(Cart) Cart) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = fn(s.cart)
	return s.cart
}

// Sessions keeps browsing sessions in memory only, bounded in size and age.
type Sessions struct {
	cache    *expirable.LRU[string, *Session]
	ttl      time.Duration
	tracking *analytics.Client
}

func NewSessions(capacity int, ttl time.Duration, tracking *analytics.Client) *Sessions {
	return &Sessions{
		cache:    expirable.NewLRU[string, *Session](capacity, nil, ttl),
		ttl:      ttl,
		tracking: tracking,
	}
}

func (s *Sessions) Open(storeID, slug string) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Slug:      slug,
		Tracker:   s.tracking.NewTracker(),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.cache.Add(sess.ID, sess)
	return sess
}

func (s *Sessions) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

func (s *Sessions) Close(id string) {
	s.cache.Remove(id)
}

// Tracking is the analytics client shared by every session's tracker.
func (s *Sessions) Tracking() *analytics.Client {
	return s.tracking
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}
