package gpu

// Limits is an immutable capability snapshot queried once at device
// construction and consulted by the memory planner (the paging package) to
// decide whether a graph fits device-resident.
type Limits struct {
	MaxBufferBytes     uint64
	PreferredAlignment uint32
}
