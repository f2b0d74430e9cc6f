package raycast3d

import (
	"sort"
	"sync"
)

// Category says why a traversal stopped.
type Category uint8

const (
	Escape     Category = iota // no primitive ahead within MaxDistance
	ZeroNormal                 // hit an edge or corner, no usable normal
	Absorbed                   // energy coefficient reached zero
	DepthLimit                 // bounce cap reached
	numCategories
)

func (c Category) String() string {
	switch c {
	case Escape:
		return "escape"
	case ZeroNormal:
		return "zero_normal"
	case Absorbed:
		return "absorbed"
	case DepthLimit:
		return "depth_limit"
	}
	return "unknown"
}

type RayLog struct {
	Category  Category
	Origin    Vector3
	Direction Vector3
	Point     Vector3 // last hit point, if any
	Bounce    int     // bounces taken before termination
	Coef      Real    // energy coefficient at termination
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Category][]RayLog
}

var cache = newRayLogCache()

func newRayLogCache() *RayLogCache {
	return &RayLogCache{rays: make(map[Category][]RayLog)}
}

// maxLogsPerCategory bounds memory when Debug is on for large images.
const maxLogsPerCategory = 1024

func logRay(category Category, origin, direction, point Vector3, bounce int, coef Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if len(cache.rays[category]) >= maxLogsPerCategory {
		return
	}
	cache.rays[category] = append(cache.rays[category], RayLog{
		Category:  category,
		Origin:    origin,
		Direction: direction,
		Point:     point,
		Bounce:    bounce,
		Coef:      coef,
	})
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	keys := make([]Category, 0, len(cache.rays))
	for k := range cache.rays {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		DebugLog("Ray type %s: %d logs", k, len(cache.rays[k]))
	}
}
