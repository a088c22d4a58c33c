// Package paging implements the out-of-core path for graphs too large for
// a single device buffer: a memory plan derived from the device's
// advertised limits, a tile partitioner that slices a csr.Graph into
// node-range sub-CSRs sized to fit a morsel, an LRU cache mediating which
// tiles are device-resident, and a paged BFS driver that routes every
// frontier expansion through that cache.
package paging
