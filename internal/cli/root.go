package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/epoch/internal/timeconv"
)

// Version is set via ldflags during build: -ldflags="-X github.com/roach88/epoch/internal/cli.Version=v1.0.0"
var Version = "dev"

// RootOptions holds the flags of the epoch command.
type RootOptions struct {
	Verbose  bool
	Format   formatValue
	Unix     bool
	JSON     bool
	Strftime string
	InputTZ  zoneValue
	OutputTZ zoneValue
	Unit     unitValue
}

// OutputFormat resolves --format and its --unix / --json shorthands.
func (o *RootOptions) OutputFormat() timeconv.OutputFormat {
	switch {
	case o.Unix:
		return timeconv.Unix
	case o.JSON:
		return timeconv.JSON
	default:
		return o.Format.format
	}
}

// NewRootCommand creates the epoch command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "epoch <input>",
		Short: "Convert unix timestamps and formatted datetimes",
		Long: `Parse a unix timestamp (seconds or milliseconds) or a formatted datetime
(YYYY/MM/DD HH:MM:SS) and print it as RFC3339, unix seconds, JSON or YAML.

Numeric input with an absolute value of 10^12 or more is read as
milliseconds, anything smaller as seconds. Use --ts to force a unit.
Formatted input is interpreted as UTC unless --input-tz local is given.

Negative timestamps must follow "--" so they are not read as flags.`,
		Example: `  epoch 1700000000
  epoch 1700000000000 --unix
  epoch "2024/02/29 12:00:00" --format json
  epoch "2025/12/20 11:10:11" --input-tz local --strftime "%d %b %Y"
  epoch -- -86400`,
		Version:       Version,
		Args:          exactlyOneInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log conversion steps to stderr")
	flags.VarP(&opts.Format, "format", "f", fmt.Sprintf("output format %v", timeconv.OutputFormats))
	flags.BoolVar(&opts.Unix, "unix", false, "shorthand for --format unix")
	flags.BoolVar(&opts.JSON, "json", false, "shorthand for --format json")
	flags.StringVar(&opts.Strftime, "strftime", "", `strftime layout for string output (e.g. "%Y/%m/%d %H:%M:%S")`)
	flags.Var(&opts.InputTZ, "input-tz", fmt.Sprintf("time zone of formatted input %v", timeconv.Zones))
	flags.Var(&opts.OutputTZ, "output-tz", fmt.Sprintf("time zone of string output %v", timeconv.Zones))
	flags.Var(&opts.Unit, "ts", fmt.Sprintf("force the unit of numeric input %v (default: auto-detect)", timeconv.Units))

	cmd.MarkFlagsMutuallyExclusive("format", "unix", "json")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	return cmd
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "expected a single timestamp or datetime argument", err)
	}
	return nil
}

func runConvert(opts *RootOptions, input string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	format := opts.OutputFormat()
	logger.Debug("converting",
		zap.String("input", input),
		zap.Stringer("format", format),
		zap.Stringer("input_tz", opts.InputTZ.zone),
		zap.Stringer("output_tz", opts.OutputTZ.zone),
		zap.Stringer("ts", opts.Unit.unit))

	conv, err := timeconv.Convert(input, timeconv.ParseOptions{
		Zone: opts.InputTZ.zone,
		Unit: opts.Unit.unit,
	})
	if err != nil {
		logger.Debug("conversion failed", zap.Error(err))
		return &ExitError{Code: ExitFailure, Err: err}
	}
	logger.Debug("parsed",
		zap.Stringer("kind", conv.Kind),
		zap.Int64("unix", conv.Instant.Unix()),
		zap.Int32("nanos", conv.Instant.Nanos()))

	if opts.Strftime != "" && format != timeconv.RFC3339 {
		logger.Warn("--strftime only applies to rfc3339 output, ignoring", zap.Stringer("format", format))
	}

	out, err := timeconv.Render(conv, format, timeconv.RenderOptions{
		Zone:   opts.OutputTZ.zone,
		Layout: opts.Strftime,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "render failed", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

