package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/treegrid/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError marks a problem with the command line itself.
func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// options collects every flag value of the command tree.
type options struct {
	format    string
	output    string
	color     string
	maxDepth  int
	logFormat string
	logLevel  string

	id    string
	op    string
	level int

	listIDs bool
}

// newApp turns the parsed flags and positional paths into an App. Invalid
// flag values are usage errors.
func (o *options) newApp(paths []string, errW io.Writer) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		RecordsPaths: paths,
		Format:       strings.ToLower(o.format),
		Output:       strings.ToLower(o.output),
		Color:        strings.ToLower(o.color),
		MaxDepth:     o.maxDepth,
		LogFormat:    strings.ToLower(o.logFormat),
		LogLevel:     strings.ToLower(o.logLevel),
	})
	if err != nil {
		return nil, usageError(err)
	}
	slog.Debug("CLI configuration resolved.", "config", cfg)

	a, err := app.NewApp(errW, cfg, nil)
	if err != nil {
		return nil, usageError(err)
	}
	return a, nil
}

// NewRootCmd builds the treegrid command tree. Rendered output goes to outW;
// logs, usage errors and diagnostics go to errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "treegrid",
		Short: "Build and query forests of hierarchical records",
		Long: `TreeGrid links flat records (id, parent id, value) from HCL, YAML or
JSON files into a forest, validates it and renders or queries it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.format, "format", "f", "auto", "Record format: 'auto', 'hcl', 'yaml' or 'json'.")
	pf.StringVar(&opts.color, "color", "auto", "Colorize text output: 'auto', 'always' or 'never'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	buildCmd := &cobra.Command{
		Use:   "build PATH...",
		Short: "Build the forest and render it",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, errW)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), outW)
		},
	}
	buildCmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output: 'text', 'json', 'yaml' or 'flat'.")
	buildCmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Stop rendering below this depth. 0 renders everything.")

	validateCmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check that the records form a valid forest",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, errW)
			if err != nil {
				return err
			}
			return a.Validate(cmd.Context(), outW, opts.listIDs)
		},
	}
	validateCmd.Flags().BoolVar(&opts.listIDs, "list-ids", false, "Print every record id in pre-order after the summary.")

	queryCmd := &cobra.Command{
		Use:   "query PATH...",
		Short: "Answer a structural query about one record",
		Long: "Answer a structural query about one record. Operations: " +
			strings.Join(app.QueryOps, ", ") + ".",
		Args: usageArgs(cobra.MinimumNArgs(1)),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(app.QueryOps, opts.op) {
				return usageError(fmt.Errorf("invalid op %q: must be one of %s", opts.op, strings.Join(app.QueryOps, ", ")))
			}
			if opts.op == app.OpAtLevel && !cmd.Flags().Changed("level") {
				return usageError(errors.New("--level is required for op 'at-level'"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(args, errW)
			if err != nil {
				return err
			}
			return a.RunQuery(cmd.Context(), outW, opts.id, opts.op, opts.level)
		},
	}
	queryCmd.Flags().StringVar(&opts.id, "id", "", "Id of the record to query.")
	queryCmd.Flags().StringVar(&opts.op, "op", app.OpChildren, "Query operation.")
	queryCmd.Flags().IntVar(&opts.level, "level", 0, "Level for op 'at-level', counted from the root.")
	queryCmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output: 'text', 'json', 'yaml' or 'flat'.")
	_ = queryCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(buildCmd, validateCmd, queryCmd)
	return rootCmd
}

// usageArgs turns positional argument errors into usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// Execute runs the command tree against args. Errors that stem from the
// command line come back as *ExitError with code 2.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	slog.Debug("CLI parser started.")
	rootCmd := NewRootCmd(outW, errW)
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Cobra reports unknown subcommands and missing required flags as
	// plain errors.
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "required flag") {
		return usageError(err)
	}
	return err
}
