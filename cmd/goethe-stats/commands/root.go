package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goethe-engine/compress"
)

// Execute builds the command tree and runs it against os.Args. Unknown
// commands print the usage text and return an error, so the process exits
// non-zero.
func Execute(version string) error {
	return execute(newRootCmd(version))
}

// execute runs cmd, printing the usage text when the failure is an
// unrecognized subcommand.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	}

	return err
}

func newRootCmd(version string) *cobra.Command {
	var (
		configPath  string
		backendName string
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "goethe-stats",
		Short: "Inspect and exercise the compression subsystem",
		Long: `goethe-stats manages the pluggable compression subsystem: it shows
backend information and statistics, toggles statistics collection, exports
reports, and runs benchmarks and stress tests against the selected backend.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file path")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", "", "backend to select (default: auto)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	setup := func() (*compress.Manager, error) {
		return setupManager(configPath, backendName, verbose)
	}

	rootCmd.AddCommand(newInfoCmd(setup))
	rootCmd.AddCommand(newStatsCmd(setup))
	rootCmd.AddCommand(newGlobalCmd(setup))
	rootCmd.AddCommand(newEnableCmd(setup))
	rootCmd.AddCommand(newDisableCmd(setup))
	rootCmd.AddCommand(newResetCmd(setup))
	rootCmd.AddCommand(newExportJSONCmd(setup))
	rootCmd.AddCommand(newExportCSVCmd(setup))
	rootCmd.AddCommand(newBenchmarkCmd(setup))
	rootCmd.AddCommand(newStressTestCmd(setup))
	rootCmd.AddCommand(newSwitchCmd(setup))

	return rootCmd
}

// setupFunc builds an initialized manager from the global flags.
type setupFunc func() (*compress.Manager, error)

func setupManager(configPath, backendName string, verbose bool) (*compress.Manager, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// The flag wins over the config file.
	if backendName == "" {
		backendName = cfg.Backend
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	mgr := compress.NewManager(compress.WithLogger(logger))
	if err := mgr.Initialize(backendName); err != nil {
		return nil, err
	}

	mgr.SetStatisticsEnabled(cfg.Statistics)
	if cfg.Level > 0 {
		if err := mgr.SetLevel(cfg.Level); err != nil {
			return nil, err
		}
	}

	return mgr, nil
}
