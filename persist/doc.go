// Package persist is the graph's persistence boundary: it serializes a
// csr.Graph to two logical tables (edges and node names) and rebuilds one
// from them.
//
// The actual columnar store is an external collaborator and is explicitly
// out of scope — TableWriter and TableReader abstract it. This package
// ships one concrete implementation, CSVWriter/CSVReader, built on the
// standard library's encoding/csv: no columnar or arrow/parquet-style
// format library appears anywhere in the retrieval pack, so this is the
// one persistence concern that has no third-party home (see DESIGN.md).
package persist
