package gpu

import (
	"context"
	"encoding/binary"

	"github.com/axgraph/callgraph/csr"
)

// CSRBuffers is the device-resident handle set for one uploaded graph.
// Weights is nil when every edge has weight 0 — there is nothing useful to
// upload, and PageRankIter/BFSWave never consult it in that case.
type CSRBuffers struct {
	N       uint32
	E       uint32
	RowOff  Buffer
	ColIdx  Buffer
	Weights Buffer
}

// UploadCSR creates device-resident storage buffers for g's forward CSR
// arrays. Buffer creation failures are wrapped as ErrBufferCreate.
func UploadCSR(ctx context.Context, dev Device, g *csr.Graph) (CSRBuffers, error) {
	rowOff, colIdx, w := g.View()

	rowOffBuf, err := dev.CreateBufferInit(ctx, encodeU32(rowOff))
	if err != nil {
		return CSRBuffers{}, ErrBufferCreate
	}
	colIdxBuf, err := dev.CreateBufferInit(ctx, encodeU32(colIdx))
	if err != nil {
		return CSRBuffers{}, ErrBufferCreate
	}

	buffers := CSRBuffers{N: g.N(), E: g.E(), RowOff: rowOffBuf, ColIdx: colIdxBuf}

	if hasNonzeroWeight(w) {
		weightsBuf, err := dev.CreateBufferInit(ctx, encodeF32(w))
		if err != nil {
			return CSRBuffers{}, ErrBufferCreate
		}
		buffers.Weights = weightsBuf
	}
	return buffers, nil
}

func hasNonzeroWeight(w []float32) bool {
	for _, v := range w {
		if v != 0 {
			return true
		}
	}
	return false
}

func encodeU32(vals []uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

func encodeF32(vals []float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], mathFloat32bits(v))
	}
	return buf
}

func decodeU32(buf []byte) []uint32 {
	vals := make([]uint32, len(buf)/4)
	for i := range vals {
		vals[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return vals
}
