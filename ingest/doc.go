// Package ingest is a string-keyed staging graph for building a csr.Graph
// out of human-readable call/dependency edges ("main calls foo") before the
// CSR store's dense uint32 ids exist. It assigns each first-seen name an
// incrementing id and compiles the accumulated edges into a *csr.Graph,
// carrying the name assignment over as the compiled graph's sparse name
// map.
//
// Its locking (muNames guarding the name table, muEdges guarding the
// pending edge list) mirrors the teacher's core.Graph per-concern
// sync.RWMutex split, adapted to this package's narrower staging role.
package ingest
