package hasher

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"massnet.org/hexsum/crypto/sha256"
)

// digestCache is a concurrent safe lru memo from message to digest.
// A nil *digestCache is a valid, always-empty cache.
type digestCache struct {
	l     sync.Mutex
	cache *lru.Cache
	// maxKeyLen bounds the size of cached messages.
	maxKeyLen int
}

func newDigestCache(maxEntries, maxKeyLen int) *digestCache {
	if maxEntries <= 0 {
		return nil
	}
	return &digestCache{
		cache:     lru.New(maxEntries),
		maxKeyLen: maxKeyLen,
	}
}

func (c *digestCache) Get(msg []byte) (sha256.Hash, bool) {
	if c == nil || len(msg) > c.maxKeyLen {
		return sha256.Hash{}, false
	}
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(string(msg))
	if !ok {
		return sha256.Hash{}, false
	}
	return v.(sha256.Hash), true
}

func (c *digestCache) Add(msg []byte, sum sha256.Hash) {
	if c == nil || len(msg) > c.maxKeyLen {
		return
	}
	c.l.Lock()
	c.cache.Add(string(msg), sum)
	c.l.Unlock()
}

func (c *digestCache) Len() int {
	if c == nil {
		return 0
	}
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

func (c *digestCache) Clear() {
	if c == nil {
		return
	}
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}
