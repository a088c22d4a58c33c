// Command callgraph is the host shell around the library packages: it
// ingests an edge/node table pair, runs the CPU and GPU analyses, and
// prints a report. The library itself has zero dependency on this binary.
package main

import "github.com/axgraph/callgraph/cmd/callgraph/cmd"

func main() {
	cmd.Execute()
}
