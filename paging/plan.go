package paging

import "github.com/axgraph/callgraph/gpu"

// MorselBytes is the fixed tile-sizing unit: 128 MiB.
const MorselBytes uint64 = 128 << 20

// MemoryPlan is the budget derived from a device's advertised limits: 70%
// of its maximum single-buffer size, expressed both in bytes and in whole
// morsels.
type MemoryPlan struct {
	BudgetBytes       uint64
	MorselBytes       uint64
	MaxResidentMorsels int
}

// NewMemoryPlan queries limits for its maximum single-buffer size as a
// proxy for usable VRAM and derives the plan. MaxResidentMorsels is floored
// at 1 even when the budget is smaller than one morsel.
func NewMemoryPlan(limits gpu.Limits) MemoryPlan {
	budget := uint64(float64(limits.MaxBufferBytes) * 0.70)
	maxResident := int(budget / MorselBytes)
	if maxResident < 1 {
		maxResident = 1
	}
	return MemoryPlan{BudgetBytes: budget, MorselBytes: MorselBytes, MaxResidentMorsels: maxResident}
}
