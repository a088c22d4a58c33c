package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	verbose     bool
	cfgFile     string
	printConfig bool
	vprConfig   = viper.New()
	logger      zerolog.Logger
)

// rootCmd is the base command; subcommands attach to it in init().
var rootCmd = &cobra.Command{
	Use:   "callgraph",
	Short: "Analyze program call and dependency graphs",
	Long: `callgraph ingests a call/dependency graph stored as an edge/node
CSV table pair and runs traversal, ranking, shortest-path, structural,
community, and anti-pattern analyses over it, optionally offloaded through
the paged GPU path.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

		if cfgFile != "" {
			vprConfig.SetConfigFile(cfgFile)
			if err := vprConfig.ReadInConfig(); err != nil {
				return err
			}
			logger.Debug().Str("file", cfgFile).Msg("config file loaded")
		}
		if printConfig {
			out, err := yaml.Marshal(vprConfig.AllSettings())
			if err != nil {
				return fmt.Errorf("marshal effective config: %w", err)
			}
			fmt.Fprint(os.Stderr, string(out))
		}
		return nil
	},
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file for default flag values")
	rootCmd.PersistentFlags().BoolVar(&printConfig, "print-config", false, "print the effective config as YAML to stderr before running")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(gpuBFSCmd)
}

// Logger returns the configured logger; PersistentPreRunE sets it up before
// any subcommand body runs.
func Logger() zerolog.Logger { return logger }
