package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tos-network/logcheck/internal/app"
	"github.com/tos-network/logcheck/internal/config"
)

var (
	version  = "0.1.0"
	rootPath string
	cfgFile  string
	jsonOut  bool
	outPath  string
	jobs     int
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "logcheck",
		Short:   "Detect log calls that pay formatting cost for disabled levels",
		Long:    `logcheck scans a Rust source tree for trace!/debug!/info!/warn!/error! calls with format arguments that are not wrapped in a matching if log::log_enabled!(log::Level::X) guard, and reports them by level, module, and hot-path impact.`,
		Version: version,
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&rootPath, "root", "r", "", "Root directory to scan (default: .)")
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: ~/.config/logcheck/config.yaml)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON instead of Markdown")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to a file instead of stdout")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel file analyzers (default: number of CPUs)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags
	if rootPath != "" {
		cfg.Root = rootPath
	}
	if jsonOut {
		cfg.Report.Format = "json"
	}
	if outPath != "" {
		cfg.Report.OutputPath = outPath
	}
	cfg.Jobs = jobs
	cfg.Verbose = verbose

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	runner := app.NewRunner(cfg, logger)
	return runner.Run(cmd.Context(), os.Stdout)
}

// newLogger builds a console logger; verbose enables debug-level output.
// The report itself goes to stdout, so logs stay on stderr.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
