package main

import (
	"fmt"
	"os"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goendo/internal/config"
	"github.com/philipparndt/goendo/version"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logIndent  bool
)

var rootCmd = &cobra.Command{
	Use:   "goendo",
	Short: "Virtual endoscopy viewer with collision-aware keyboard navigation",
	Long: `goendo flies a camera through a reconstructed surface (STL) with the keyboard.
Forward and backward moves are checked against the surface and undone when the
bounding sphere around the camera would cut through it.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warning|error)")
	rootCmd.PersistentFlags().BoolVar(&logIndent, "log-indent", false, "Indent logs")
}

// loadConfig reads the configuration file, applies the global flags and sets
// up logging
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	conf, err := config.Load(configFile)
	if err != nil {
		return conf, err
	}
	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = logLevel
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if logIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	return conf, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
