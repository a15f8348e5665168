// Package cmd contains the CLI commands for the kwcheck application.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/kwartier-west/kwcheck/internal/config"
	"github.com/kwartier-west/kwcheck/internal/fs"
	"github.com/kwartier-west/kwcheck/internal/metrics"
)

// rootOptions holds the persistent flag values.
type rootOptions struct {
	configPath    string
	contentDir    string
	reportFile    string
	metricsFile   string
	jsonOutput    bool
	noSuggestions bool
	verbose       bool
}

// Dependencies holds the collaborators used by the command tree. Zero
// fields fall back to the production implementations.
type Dependencies struct {
	NewRunner func(cfg *config.Config) (ValidateRunner, error)
	Files     FileWriter
	Metrics   MetricsRecorder
	Now       func() time.Time
}

// DefaultDependencies returns the production collaborators.
func DefaultDependencies() Dependencies {
	return Dependencies{
		NewRunner: NewServiceRunner,
		Files:     fs.ReportWriter{},
		Metrics:   metrics.NewRecorder(),
		Now:       time.Now,
	}
}

func (d Dependencies) withDefaults() Dependencies {
	def := DefaultDependencies()
	if d.NewRunner == nil {
		d.NewRunner = def.NewRunner
	}
	if d.Files == nil {
		d.Files = def.Files
	}
	if d.Metrics == nil {
		d.Metrics = def.Metrics
	}
	if d.Now == nil {
		d.Now = def.Now
	}
	return d
}

// NewRootCmd creates a new root command instance with production wiring.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	return BuildCommandTree(DefaultDependencies())
}

// BuildCommandTree creates the root command and its subcommands. Running
// the root command without a subcommand validates the content.
func BuildCommandTree(deps Dependencies) *cobra.Command {
	deps = deps.withDefaults()
	opts := &rootOptions{}

	run := func(cmd *cobra.Command) error {
		cfg, err := resolveConfig(cmd, opts)
		if err != nil {
			return err
		}
		slog.Debug("configuration resolved",
			"contentDir", cfg.ContentDir,
			"optional", cfg.Optional,
			"suggestions", cfg.Suggestions)

		runner, err := deps.NewRunner(cfg)
		if err != nil {
			return err
		}
		return runValidateAndReport(cmd, runner, opts.jsonOutput, outputs{
			reportFile:  cfg.ReportFile,
			metricsFile: cfg.MetricsFile,
			files:       deps.Files,
			metrics:     deps.Metrics,
			now:         deps.Now,
		})
	}

	cmd := &cobra.Command{
		Use:           "kwcheck",
		Short:         "Validate the Kwartier West content documents",
		Long:          "kwcheck validates the JSON content documents of the Kwartier West site and cross-checks artist references.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultFile, "Configuration file")
	flags.StringVarP(&opts.contentDir, "content-dir", "d", config.DefaultContentDir, "Directory holding the content documents")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	flags.StringVar(&opts.reportFile, "report-file", "", "Also write the JSON report to this file")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	flags.BoolVar(&opts.noSuggestions, "no-suggestions", false, "Disable slug suggestions")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")

	cmd.AddCommand(NewValidateCmd(run))

	return cmd
}

// resolveConfig loads the configuration file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(opts.configPath, flags.Changed("config"))
	if err != nil {
		return nil, err
	}

	if flags.Changed("content-dir") {
		cfg.ContentDir = opts.contentDir
	}
	if flags.Changed("report-file") {
		cfg.ReportFile = opts.reportFile
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if opts.noSuggestions {
		cfg.Suggestions = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ContextError{Op: "configuration", Err: err}
	}
	return cfg, nil
}

// setupLogging installs the default slog handler on w. Logs never go to
// stdout, which carries the report.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// ExecuteContext builds the production command tree and runs it with the
// given context. This enables graceful shutdown via context cancellation
// (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
