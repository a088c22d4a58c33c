package persist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVWriter implements TableWriter over two destination streams: one CSV
// per table. Columns are source,target,weight for edges and id,name for
// nodes, with a header row.
type CSVWriter struct {
	Edges io.Writer
	Nodes io.Writer
}

// WriteEdges writes the header followed by one row per EdgeRow.
func (w CSVWriter) WriteEdges(rows []EdgeRow) error {
	cw := csv.NewWriter(w.Edges)
	if err := cw.Write([]string{"source", "target", "weight"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatUint(uint64(r.Source), 10),
			strconv.FormatUint(uint64(r.Target), 10),
			strconv.FormatFloat(float64(r.Weight), 'g', -1, 32),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNodes writes the header followed by one row per NodeRow.
func (w CSVWriter) WriteNodes(rows []NodeRow) error {
	cw := csv.NewWriter(w.Nodes)
	if err := cw.Write([]string{"id", "name"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{strconv.FormatUint(uint64(r.NodeID), 10), r.Name}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVReader implements TableReader over two source streams, the mirror of
// CSVWriter.
type CSVReader struct {
	Edges io.Reader
	Nodes io.Reader
}

// ReadEdges parses the edges CSV, skipping its header row.
func (r CSVReader) ReadEdges() ([]EdgeRow, error) {
	records, err := csv.NewReader(r.Edges).ReadAll()
	if err != nil {
		return nil, err
	}
	rows, err := parseRows(records, 3, func(rec []string) (EdgeRow, error) {
		source, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return EdgeRow{}, err
		}
		target, err := strconv.ParseUint(rec[1], 10, 32)
		if err != nil {
			return EdgeRow{}, err
		}
		weight, err := strconv.ParseFloat(rec[2], 32)
		if err != nil {
			return EdgeRow{}, err
		}
		return EdgeRow{Source: uint32(source), Target: uint32(target), Weight: float32(weight)}, nil
	})
	return rows, err
}

// ReadNodes parses the nodes CSV, skipping its header row.
func (r CSVReader) ReadNodes() ([]NodeRow, error) {
	records, err := csv.NewReader(r.Nodes).ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(records, 2, func(rec []string) (NodeRow, error) {
		id, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return NodeRow{}, err
		}
		return NodeRow{NodeID: uint32(id), Name: rec[1]}, nil
	})
}

// parseRows skips the header row (records[0]) and applies parse to every
// subsequent record, rejecting malformed rows with their position.
func parseRows[T any](records [][]string, wantCols int, parse func([]string) (T, error)) ([]T, error) {
	if len(records) == 0 {
		return nil, nil
	}
	rows := make([]T, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != wantCols {
			return nil, fmt.Errorf("persist: row %d has %d columns, want %d", i+1, len(rec), wantCols)
		}
		row, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("persist: row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
