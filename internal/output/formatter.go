// Package output provides formatting utilities for int output.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/flashingpumpkin/intconv/internal/config"
	"github.com/flashingpumpkin/intconv/internal/intfmt"
	"github.com/flashingpumpkin/intconv/internal/util"
)

// Formatter handles formatted output for int.
type Formatter struct {
	verbose   bool
	quiet     bool
	noColor   bool
	writer    io.Writer
	errWriter io.Writer
	separator string
	width     int
	renderer  *lipgloss.Renderer
}

// NewFormatter creates a new Formatter with the specified options.
// It checks the NO_COLOR environment variable to determine if colour output should be disabled.
func NewFormatter(verbose, quiet bool, w io.Writer) *Formatter {
	f := &Formatter{
		verbose:   verbose,
		quiet:     quiet,
		writer:    w,
		errWriter: os.Stderr,
		separator: config.DefaultSeparator,
		renderer:  lipgloss.NewRenderer(w),
	}
	if os.Getenv("NO_COLOR") != "" {
		f.DisableColor()
	}
	return f
}

// DisableColor turns off colour for both the labels and the separator rule.
// Only this Formatter is affected.
func (f *Formatter) DisableColor() {
	f.noColor = true
	f.renderer.SetColorProfile(termenv.Ascii)
}

// style returns a colour with the given attributes, disabled when the
// Formatter has colour turned off.
func (f *Formatter) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c
}

// SetErrorWriter sets where diagnostics are written. Defaults to stderr.
func (f *Formatter) SetErrorWriter(w io.Writer) {
	f.errWriter = w
}

// SetSeparator sets the rule character and width. A width of zero means the
// terminal width.
func (f *Formatter) SetSeparator(sep string, width int) {
	f.separator = sep
	f.width = width
}

// PrintResult prints the four-line block for one converted argument.
func (f *Formatter) PrintResult(r intfmt.Rendered) {
	label := f.style(color.FgCyan, color.Bold)
	tag := f.style(color.FgYellow)
	value := f.style(color.FgWhite)

	for _, field := range r.Fields() {
		_, _ = label.Fprintf(f.writer, "%s:", field.Label)
		_, _ = fmt.Fprint(f.writer, " ")
		v := field.Value
		if t := r.Tag(); t != "" {
			_, _ = tag.Fprint(f.writer, t)
			_, _ = fmt.Fprint(f.writer, " ")
			v = strings.TrimPrefix(v, t+" ")
		}
		_, _ = value.Fprintln(f.writer, v)
	}
}

// PrintError prints the single-line report for an argument that could not be
// converted.
func (f *Formatter) PrintError(arg string, err error) {
	red := f.style(color.FgRed, color.Bold)

	_, _ = red.Fprint(f.writer, "Error:")
	_, _ = fmt.Fprintf(f.writer, " %s.\n", Describe(arg, err))
}

// Describe returns the user-facing message for a conversion error, without
// the "Error:" label.
func Describe(arg string, err error) string {
	var werr *intfmt.WidthError
	if errors.As(err, &werr) {
		return fmt.Sprintf(`"%s" needs %d bits, more than the %d-bit limit`, arg, werr.Need, werr.Limit)
	}
	return err.Error()
}

// PrintSeparator prints a rule across the output width. Quiet mode skips it.
func (f *Formatter) PrintSeparator() {
	if f.quiet {
		return
	}
	width := f.width
	if width <= 0 {
		width = TerminalWidth(f.writer)
	}
	_, _ = fmt.Fprintln(f.writer, f.renderer.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(Rule(f.separator, width)))
}

// Rule repeats sep to fill width terminal cells. Wide separators are measured
// by their display width, not their byte length.
func Rule(sep string, width int) string {
	cell := ansi.StringWidth(sep)
	if cell <= 0 || width <= 0 {
		return ""
	}
	return strings.Repeat(sep, width/cell)
}

// TerminalWidth returns the column count of w when it is a terminal, and
// config.DefaultWidth otherwise.
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return config.DefaultWidth
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return config.DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return config.DefaultWidth
	}
	return width
}

// Debugf prints a diagnostic line to the error writer in verbose mode.
func (f *Formatter) Debugf(format string, args ...any) {
	if !f.verbose {
		return
	}

	dim := f.style(color.FgHiBlack)
	_, _ = dim.Fprintf(f.errWriter, "debug: "+format+"\n", args...)
}

// PrintSummary prints how many arguments converted, in verbose mode.
func (f *Formatter) PrintSummary(converted, failed int) {
	if !f.verbose || f.quiet {
		return
	}

	white := f.style(color.FgWhite)
	total := converted + failed
	_, _ = white.Fprintf(f.errWriter, "converted %s of %s argument(s)\n",
		util.FormatNumber(converted), util.FormatNumber(total))
	if failed > 0 {
		red := f.style(color.FgRed)
		_, _ = red.Fprintf(f.errWriter, "%s failed\n", util.FormatNumber(failed))
	}
}
