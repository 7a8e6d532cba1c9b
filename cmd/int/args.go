package main

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"
)

// negativeLiteral matches arguments such as "-1" or "-0042" that would
// otherwise be read as shorthand flags.
var negativeLiteral = regexp.MustCompile(`^-[0-9]`)

// splitNumericArgs reorders args so that every positional argument, including
// negative literals, follows a "--" terminator while flags and their values
// stay in front. The relative order of positionals is preserved.
func splitNumericArgs(flags *pflag.FlagSet, args []string) []string {
	opts := make([]string, 0, len(args))
	var positional []string
	terminated := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			terminated = true
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-") || negativeLiteral.MatchString(arg) || !isShorthand(flags, arg):
			positional = append(positional, arg)
		default:
			opts = append(opts, arg)
			if takesValue(flags, arg) && i+1 < len(args) {
				i++
				opts = append(opts, args[i])
			}
		}
	}

	if len(positional) == 0 && !terminated {
		return opts
	}
	return append(append(opts, "--"), positional...)
}

// takesValue reports whether arg is a flag that consumes the next argument
// as its value, as in "--width 40" or "-w 40".
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		f = flags.Lookup(arg[2:])
	case len(arg) == 2:
		f = flags.ShorthandLookup(arg[1:])
	default:
		// Combined shorthands such as "-qw": only the last one can take
		// a separate value, and only if the others are all booleans.
		for j := 1; j < len(arg)-1; j++ {
			prev := flags.ShorthandLookup(arg[j : j+1])
			if prev == nil || prev.NoOptDefVal == "" {
				return false
			}
		}
		f = flags.ShorthandLookup(arg[len(arg)-1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

// isShorthand reports whether a single-dash arg starts with a registered
// shorthand letter. Anything else, such as "-x80", is a positional to be
// reported by the converter. Help and version are added by cobra at
// execution time, so their letters are always treated as flags.
func isShorthand(flags *pflag.FlagSet, arg string) bool {
	if strings.HasPrefix(arg, "--") || len(arg) < 2 {
		return true
	}
	switch c := arg[1:2]; c {
	case "h", "v":
		return true
	default:
		return flags.ShorthandLookup(c) != nil
	}
}
