package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildEdgesPath string
	buildNodesPath string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Ingest an edge/node table pair and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(buildEdgesPath, buildNodesPath)
		if err != nil {
			return err
		}
		Logger().Info().Uint32("n", g.N()).Uint32("e", g.E()).Msg("graph ingested")
		fmt.Printf("N=%d E=%d\n", g.N(), g.E())
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildEdgesPath, "edges", "", "path to the edges CSV table")
	buildCmd.Flags().StringVar(&buildNodesPath, "nodes", "", "path to the nodes CSV table")
	buildCmd.MarkFlagRequired("edges")
	buildCmd.MarkFlagRequired("nodes")
}
