package pythonparser

import (
	"sync"

	spooky "github.com/dgryski/go-spooky"

	"github.com/recastdev/recast/recast-golib/collections"
)

// parseCacheSize bounds the number of parse results retained by
// ParseModuleCached.
const parseCacheSize = 64

type sourceHash [2]uint64

func hashSource(src []byte) sourceHash {
	var h sourceHash
	spooky.Hash128(src, &h[0], &h[1])
	return h
}

var parseCache = struct {
	sync.Mutex
	entries collections.OrderedMap
}{entries: collections.NewOrderedMap(parseCacheSize)}

// ParseModuleCached is ParseModule behind a process-wide LRU keyed by a
// 128-bit hash of the buffer. Callers share the returned tree, so they
// must treat it as read-only.
func ParseModuleCached(src []byte, opts Options) (*ParsedModule, error) {
	key := hashSource(src)

	parseCache.Lock()
	if v, ok := parseCache.entries.Get(key); ok {
		parseCache.entries.Delete(key)
		parseCache.entries.Set(key, v)
		parseCache.Unlock()
		return v.(*ParsedModule), nil
	}
	parseCache.Unlock()

	mod, err := ParseModule(src, opts)
	if err != nil {
		return nil, err
	}

	parseCache.Lock()
	defer parseCache.Unlock()
	parseCache.entries.Set(key, mod)
	for parseCache.entries.Len() > parseCacheSize {
		parseCache.entries.RangeInc(func(k, v interface{}) bool {
			parseCache.entries.Delete(k)
			return false
		})
	}
	return mod, nil
}

// PurgeParseCache drops all cached parse results.
func PurgeParseCache() {
	parseCache.Lock()
	defer parseCache.Unlock()
	parseCache.entries.RangeInc(func(k, v interface{}) bool {
		parseCache.entries.Delete(k)
		return true
	})
}
