package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashingpumpkin/intconv/internal/config"
	interrors "github.com/flashingpumpkin/intconv/internal/errors"
	"github.com/flashingpumpkin/intconv/internal/intfmt"
	"github.com/flashingpumpkin/intconv/internal/output"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "int [flags] INT [INT ...]",
		Short: "Print an integer in binary, octal, decimal and hexadecimal",
		Long: `Prints an integer in its [b]inary, [o]ctal, [d]ecimal, and he[x] bases.

Use a single letter prefix to declare the base of the input, e.g. b1010.
The base defaults to [d]ecimal if the prefix is omitted. Leading zeros are
ignored, so literals in the form 0x123 are also accepted.

Negative integers are shown in two's complement, using the smallest of
8, 16, 32 or 64 bits that can hold the value (or more, in whole bytes).

Accepts multiple arguments.`,
		Example: `  int 64
  int b1001 o777 d256 x1EA
  int -129 x-80`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			return run(cmd, cfg, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "Stop at the first argument that cannot be converted")
	flags.IntVar(&cfg.MaxBits, "max-bits", cfg.MaxBits, "Largest two's complement width for negative values (0 = unlimited)")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colour output")
	flags.BoolVar(&cfg.NoSeparator, "no-separator", cfg.NoSeparator, "Do not print a rule between results")
	flags.StringVar(&cfg.Separator, "separator", cfg.Separator, "Character used to draw the rule between results")
	flags.IntVarP(&cfg.Width, "width", "w", cfg.Width, "Width of the rule between results (default: terminal width)")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Print results and errors only")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print parsing details to stderr")

	return cmd
}

// run converts each argument in order, printing one block per argument.
// Failed arguments are reported inline; processing continues unless
// FailFast is set. Returns interrors.ErrInvalidArgs if any argument failed.
func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	formatter := output.NewFormatter(cfg.Verbose, cfg.Quiet, cmd.OutOrStdout())
	formatter.SetErrorWriter(cmd.ErrOrStderr())
	formatter.SetSeparator(cfg.Separator, cfg.Width)
	if cfg.NoColor {
		formatter.DisableColor()
	}

	opts := intfmt.Options{MaxBits: cfg.MaxBits}
	converted, failed := 0, 0
	for i, arg := range args {
		if i > 0 && !cfg.NoSeparator {
			formatter.PrintSeparator()
		}

		digits, base := intfmt.Split(arg)
		formatter.Debugf("%q: radix %d, digits %q", arg, base.Radix, digits)

		r, err := intfmt.Convert(arg, opts)
		if err != nil {
			formatter.Debugf("%q: %v", arg, err)
			formatter.PrintError(arg, err)
			failed++
			if cfg.FailFast {
				break
			}
			continue
		}
		if r.BitWidth > 0 {
			formatter.Debugf("%q: negative, %d-bit two's complement", arg, r.BitWidth)
		}
		formatter.PrintResult(r)
		converted++
	}

	formatter.PrintSummary(converted, failed)
	if failed > 0 {
		return interrors.ErrInvalidArgs
	}
	return nil
}
