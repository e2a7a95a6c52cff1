package auth

import (
	"container/list"
	"sync"
	"time"
)

// SessionCache is a size-bounded LRU of resolved sessions with a per-entry
// TTL. Entries are also dropped explicitly on logout and on user updates.
type SessionCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
}

type cacheItem struct {
	key       string
	session   Session
	expiresAt time.Time
}

// NewSessionCache creates a cache. A non-positive size or TTL disables caching.
func NewSessionCache(maxSize int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

func (c *SessionCache) enabled() bool {
	return c != nil && c.maxSize > 0 && c.ttl > 0
}

// Get returns a copy of the cached session. Entries past either the cache
// TTL or the session's own expiry are treated as missing.
func (c *SessionCache) Get(sessionID string) (Session, bool) {
	if !c.enabled() {
		return Session{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[sessionID]
	if !ok {
		return Session{}, false
	}
	item := elem.Value.(*cacheItem)
	now := c.now()
	if !now.Before(item.expiresAt) || !now.Before(item.session.Session.ExpiresAt) {
		c.removeElement(elem)
		return Session{}, false
	}
	c.lru.MoveToFront(elem)
	return item.session, true
}

// Set stores s under its session ID.
func (c *SessionCache) Set(s Session) {
	if !c.enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	item := &cacheItem{key: s.Session.ID, session: s, expiresAt: c.now().Add(c.ttl)}
	if elem, ok := c.items[item.key]; ok {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return
	}

	c.items[item.key] = c.lru.PushFront(item)
	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Invalidate drops one session.
func (c *SessionCache) Invalidate(sessionID string) {
	if !c.enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[sessionID]; ok {
		c.removeElement(elem)
	}
}

// InvalidateUser drops every session of a user and returns how many were removed.
func (c *SessionCache) InvalidateUser(userID string) int {
	if !c.enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []*list.Element
	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		if elem.Value.(*cacheItem).session.User.ID == userID {
			stale = append(stale, elem)
		}
	}
	for _, elem := range stale {
		c.removeElement(elem)
	}
	return len(stale)
}

// Len returns the number of cached sessions.
func (c *SessionCache) Len() int {
	if !c.enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *SessionCache) removeElement(elem *list.Element) {
	delete(c.items, elem.Value.(*cacheItem).key)
	c.lru.Remove(elem)
}
