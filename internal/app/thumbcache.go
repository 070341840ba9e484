package app

import (
	"fmt"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"

	"syno-photo-gallery/internal/synofoto"
)

// thumbCache is an in-memory LRU for thumbnail bytes so repeated page
// renders do not hit the NAS for every image. A nil thumbCache is valid and
// caches nothing.
type thumbCache struct {
	*lru.Cache[string, []byte]
}

// newThumbCache initializes the cache from configuration, or returns nil
// when the cache is disabled.
func newThumbCache(conf ThumbCacheConfig) *thumbCache {
	if !conf.UseInMemoryCache {
		return nil
	}
	avgThumbSize, _ := humanize.ParseBytes("200 KB")
	cacheSize := 1
	if configuredSize := uint64(conf.InMemoryCacheSize) / avgThumbSize; configuredSize > 0 {
		cacheSize = int(configuredSize)
	}
	l, _ := lru.New[string, []byte](cacheSize)
	return &thumbCache{l}
}

// get returns the cached bytes for the key, if present.
func (t *thumbCache) get(key string) ([]byte, bool) {
	if t == nil {
		return nil, false
	}
	return t.Get(key)
}

// store writes the bytes for the key.
func (t *thumbCache) store(key string, data []byte) {
	if t == nil {
		return
	}
	t.Add(key, data)
}

// thumbKey generates the cache key for one thumbnail variant.
func thumbKey(space synofoto.Space, id synofoto.PhotoID, size synofoto.ThumbSize, cacheKey string) string {
	return fmt.Sprintf("thumb-%s-%d-%s-%s", space, id, size, cacheKey)
}
