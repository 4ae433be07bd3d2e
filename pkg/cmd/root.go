package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/config"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/errors"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/processor"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/utils"
	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/version"
)

const (
	UseDescription   = "esio [flags] PATH"
	ShortDescription = "ES imports optimizer - A tool to merge, dedupe and sort JavaScript imports"
	LongDescription  = `esio is a command-line tool that normalizes the import block at the top of
JavaScript and TypeScript files.

Rules (all disabled by default):
  --sort     order import statements by module source
  --dedupe   drop repeated identical import lines
  --merge    combine imports of the same module into one statement

Only single-line "import ... from '...'" statements at the top of a file are rewritten;
everything after the first other line is left untouched.

PATH can be a single file, a directory or "-" for standard input. When a directory is
specified, all source files in the directory and subdirectories are processed recursively.

Rules can also be set in a .esio.yaml file in the working directory or the project root
(the nearest directory with a package.json), or with ESIO_* environment variables.`
)

var (
	configPath  string
	inPlace     bool
	showDiff    bool
	check       bool
	noColor     bool
	showVersion bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           UseDescription,
		Short:         ShortDescription,
		Long:          LongDescription,
		Args:          validateArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.Bool("sort", false, "Sort import statements and named imports by module source")
	flags.Bool("dedupe", false, "Remove duplicate import lines")
	flags.Bool("merge", false, "Merge imports of the same module into one statement")
	flags.Bool("keep-malformed", false, "Keep import lines that cannot be parsed instead of dropping them")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Int("jobs", 0, "Number of files processed in parallel (0 uses all CPUs)")
	flags.StringVar(&configPath, "config", "", "Path to a configuration file (default .esio.yaml)")
	flags.BoolVar(&inPlace, "in-place", false, "Modify files in place instead of printing to stdout")
	flags.BoolVar(&showDiff, "diff", false, "Print a diff of the changes instead of the rewritten file")
	flags.BoolVar(&check, "check", false, "List files that would change and exit with an error if any")
	flags.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// outputMode resolves the mutually exclusive output flags
func outputMode() (processor.OutputMode, error) {
	mode := processor.PrintMode
	selected := 0
	if inPlace {
		mode = processor.InPlaceMode
		selected++
	}
	if showDiff {
		mode = processor.DiffMode
		selected++
	}
	if check {
		mode = processor.CheckMode
		selected++
	}
	if selected > 1 {
		return mode, fmt.Errorf("%w: %s", errors.ErrInvalidOutput, errors.ErrMsgConflictingOutputFlags)
	}
	return mode, nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	path := args[0]

	mode, err := outputMode()
	if err != nil {
		return err
	}

	searchPath := path
	if path == processor.StdinPath {
		searchPath = "."
	}
	cfg, err := config.LoadConfig(configPath, cmd.Flags(), utils.ConfigSearchPaths(searchPath)...)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel())
	logger.Debug("loaded configuration", "rules", fmt.Sprintf("%+v", cfg.Rules), "jobs", cfg.Processing.Jobs)

	p := processor.New(processor.ProcessorConfig{
		Rules:      cfg.OptimizerRules(),
		Extensions: cfg.Processing.Extensions,
		Mode:       mode,
		Jobs:       cfg.Processing.Jobs,
		NoColor:    noColor,
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	})
	return p.ProcessPath(cmd.Context(), path)
}

// newLogger creates the command logger writing to w
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "esio",
		Level:  level,
	})
}

// Execute runs the root command, stopping early when ctx is cancelled
func Execute(ctx context.Context) error {
	return executeCommand(ctx, rootCmd)
}

// executeCommand runs cmd and reports its error on the command's error writer
func executeCommand(ctx context.Context, cmd *cobra.Command) error {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
