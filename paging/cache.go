package paging

import (
	"container/list"

	"github.com/axgraph/callgraph/gpu"
)

// TileCache is a bounded, capacity >= 1 LRU map from tile id to its
// device-resident buffer. No eviction-policy library appears anywhere in
// the retrieval pack for this shape, so it is built directly on
// container/list, the same way the teacher reaches for container/heap in
// its Dijkstra priority queue.
type TileCache struct {
	cap   int
	order *list.List
	items map[int]*list.Element
}

type cacheEntry struct {
	id  int
	buf gpu.Buffer
}

// NewTileCache constructs a cache of the given capacity, floored at 1.
func NewTileCache(capacity int) *TileCache {
	if capacity < 1 {
		capacity = 1
	}
	return &TileCache{cap: capacity, order: list.New(), items: make(map[int]*list.Element)}
}

// Get promotes id to most-recently-used and returns its buffer, if present.
func (c *TileCache) Get(id int) (gpu.Buffer, bool) {
	el, ok := c.items[id]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).buf, true
}

// Insert reinserts buf for id (promoting it, no eviction) if id is already
// present. Otherwise, if the cache is at capacity, it evicts the least-
// recently-used entry — releasing its buffer immediately, since the cache
// owns every buffer it holds — and returns the evicted id.
func (c *TileCache) Insert(id int, buf gpu.Buffer) (evictedID int, evicted bool) {
	if el, ok := c.items[id]; ok {
		el.Value.(*cacheEntry).buf = buf
		c.order.MoveToFront(el)
		return 0, false
	}

	if len(c.items) >= c.cap {
		back := c.order.Back()
		entry := back.Value.(*cacheEntry)
		evictedID = entry.id
		evicted = true
		entry.buf.Release()
		c.order.Remove(back)
		delete(c.items, evictedID)
	}

	el := c.order.PushFront(&cacheEntry{id: id, buf: buf})
	c.items[id] = el
	return evictedID, evicted
}

// Clear releases every cached buffer and empties the cache.
func (c *TileCache) Clear() {
	for _, el := range c.items {
		el.Value.(*cacheEntry).buf.Release()
	}
	c.order.Init()
	c.items = make(map[int]*list.Element)
}

// Cap returns the cache's capacity.
func (c *TileCache) Cap() int { return c.cap }

// Len returns the number of entries currently cached.
func (c *TileCache) Len() int { return len(c.items) }
