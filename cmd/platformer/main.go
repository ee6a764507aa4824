// platformer is a 2D tile platformer.
//
// Usage:
//
//	platformer play                 - Play a stage in a window
//	platformer simulate             - Run a stage headless and print a report
//
// Global flags:
//
//	--config <dir>      - Read configs from dir instead of the embedded set
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
	flagStage     string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A 2D tile platformer",
	Long: `Run, jump and stomp through tile stages.

Available commands:
  play      - Play a stage in a window
  simulate  - Run a stage headless, optionally from a replay

Examples:
  platformer play
  platformer play --record run.json
  platformer play --config ./configs --watch
  platformer simulate --replay run.json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
		})
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagStage, "stage", "demo", "Stage name under stages/")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLoader reads from --config when set, else from the embedded configs
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfigs loads the base configs and the selected stage
func loadConfigs() (*config.Loader, *config.GameConfig, *config.StageConfig, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	stageCfg, err := loader.LoadStage(flagStage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load stage: %w", err)
	}
	return loader, cfg, stageCfg, nil
}
