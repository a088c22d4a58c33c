package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir string) (edgesPath, nodesPath string) {
	t.Helper()
	edgesPath = filepath.Join(dir, "edges.csv")
	nodesPath = filepath.Join(dir, "nodes.csv")

	edgesCSV := "source,target,weight\n0,1,1\n1,2,1\n2,0,1\n"
	nodesCSV := "id,name\n0,main\n1,foo\n2,bar\n"

	require.NoError(t, os.WriteFile(edgesPath, []byte(edgesCSV), 0o644))
	require.NoError(t, os.WriteFile(nodesPath, []byte(nodesCSV), 0o644))
	return edgesPath, nodesPath
}

func TestBuildCmd_Smoke(t *testing.T) {
	edgesPath, nodesPath := writeFixture(t, t.TempDir())
	rootCmd.SetArgs([]string{"build", "--edges", edgesPath, "--nodes", nodesPath})
	require.NoError(t, rootCmd.Execute())
}

func TestAnalyzeCmd_Smoke(t *testing.T) {
	edgesPath, nodesPath := writeFixture(t, t.TempDir())
	rootCmd.SetArgs([]string{"analyze", "--edges", edgesPath, "--nodes", nodesPath, "--source", "0"})
	require.NoError(t, rootCmd.Execute())
}

func TestGPUBFSCmd_Smoke(t *testing.T) {
	edgesPath, nodesPath := writeFixture(t, t.TempDir())
	rootCmd.SetArgs([]string{"gpu-bfs", "--edges", edgesPath, "--nodes", nodesPath, "--source", "0"})
	require.NoError(t, rootCmd.Execute())
}

func TestBuildCmd_PrintConfig_Smoke(t *testing.T) {
	edgesPath, nodesPath := writeFixture(t, t.TempDir())
	rootCmd.SetArgs([]string{"build", "--edges", edgesPath, "--nodes", nodesPath, "--print-config"})
	require.NoError(t, rootCmd.Execute())
}
