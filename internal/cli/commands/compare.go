package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/tracediff/pkg/config"
	"github.com/ccollicutt/tracediff/pkg/differ"
	"github.com/ccollicutt/tracediff/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CompareOptions holds command-line options for the compare command.
type CompareOptions struct {
	Profile    string
	Output     string
	Anchor     string
	Fields     int
	Strict     bool
	FailOnDiff bool
	Color      string
	Verbose    bool
}

// NewCompareCommand creates the compare command. The root command uses it
// directly so that `tracediff <expected> <actual>` needs no subcommand.
func NewCompareCommand() *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <expected-trace> <actual-trace>",
		Short: "Report the first divergence between two execution traces",
		Long: `Compare an expected execution trace with an actual one and report the
first record where they disagree.

Lines before the first line starting with the anchor ("A" by default) are
preamble and are skipped independently in each file; the anchor line itself
is skipped too. The remaining lines are paired positionally and the first
7 whitespace-separated fields of each pair are compared case-insensitively.

Nothing is printed when the traces agree.

Exit codes:
  0 - Traces agree, or diverge without --fail-on-diff
  1 - Traces diverge and --fail-on-diff is set
  2 - Missing file, malformed record, or other error`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Comparison profile (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", string(config.DefaultOutput), "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Anchor, "anchor", config.DefaultAnchor, "Prefix of the line that ends the preamble")
	cmd.Flags().IntVar(&opts.Fields, "fields", config.DefaultFields, "Number of leading fields compared per record")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on unequal trace lengths or a missing anchor")
	cmd.Flags().BoolVar(&opts.FailOnDiff, "fail-on-diff", false, "Exit with status 1 when the traces diverge")
	cmd.Flags().StringVar(&opts.Color, "color", string(config.DefaultColor), "Highlight diverging records (auto|always|never)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log comparison progress to stderr and show source line numbers")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, opts *CompareOptions) error {
	ExitCode = 0
	expectedPath, actualPath := args[0], args[1]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose).WithFields(log.Fields{
		"expected": expectedPath,
		"actual":   actualPath,
	})

	differOpts := append(cfg.DifferOptions(), differ.WithLogger(logger))
	result, err := differ.CompareFiles(ctx, expectedPath, actualPath, differOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	formatter, err := createFormatter(cfg, out, opts.Verbose)
	if err != nil {
		return err
	}

	report := output.NewReport(result, expectedPath, actualPath)
	if err := formatter.Format(ctx, report, out); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasDivergence() && opts.FailOnDiff {
		ExitCode = 1
	}
	return nil
}

// resolveConfig layers defaults, the profile file and environment, then
// explicitly set flags, in increasing precedence.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *CompareOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.Profile != "" {
		loaded, err := config.Load(ctx, opts.Profile)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		cfg = loaded
	} else if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("anchor") {
		cfg.Anchor = opts.Anchor
	}
	if flags.Changed("fields") {
		cfg.Fields = opts.Fields
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.Strict
	}
	if flags.Changed("output") {
		cfg.Output = config.OutputFormat(opts.Output)
	}
	if flags.Changed("color") {
		cfg.Color = config.ColorMode(opts.Color)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createFormatter(cfg *config.Config, out io.Writer, verbose bool) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: verbose,
		Color:   useColor(cfg.Color, out),
	}

	switch cfg.Output {
	case config.OutputText:
		return output.NewTextFormatter(formatOpts), nil
	case config.OutputJSON:
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", cfg.Output)
	}
}

func useColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
