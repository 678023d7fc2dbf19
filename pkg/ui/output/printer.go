package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/arthur-debert/edir/pkg/ui"
	"github.com/arthur-debert/edir/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Options configures a Printer
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Format controls colouring; FormatAuto decides per stream
	Format ui.Format
	// Quiet suppresses success lines
	Quiet bool
	// NoInvertColor prints failures in the plain action colour
	NoInvertColor bool
	// Styles overrides the embedded style configuration
	Styles *styles.Config
}

// Printer writes action lines. It implements apply.Reporter.
type Printer struct {
	stdout    io.Writer
	stderr    io.Writer
	outStyles styles.Registry
	errStyles styles.Registry
	quiet     bool
	invert    bool
}

// NewPrinter creates a printer
func NewPrinter(opts Options) *Printer {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	cfg := styles.Default()
	if opts.Styles != nil {
		cfg = *opts.Styles
	}
	return &Printer{
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		outStyles: cfg.Build(renderer(opts.Stdout, opts.Format)),
		errStyles: cfg.Build(renderer(opts.Stderr, opts.Format)),
		quiet:     opts.Quiet,
		invert:    !opts.NoInvertColor,
	}
}

func renderer(w io.Writer, format ui.Format) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if ui.Resolve(format, w) == ui.FormatTerminal {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Report prints the line for one attempted action
func (p *Printer) Report(o types.Outcome) {
	if o.Failed() {
		line := fmt.Sprintf("%s %s ERROR: %s", o.Action.Verb(types.TenseFailed), o.Message(), errors.Detail(o.Err))
		p.println(p.stderr, p.errStyles, styleName(o.Action, p.invert), line)
		return
	}
	if p.quiet {
		return
	}
	line := fmt.Sprintf("%s %s", o.Action.Verb(types.TenseDone), o.Message())
	p.println(p.stdout, p.outStyles, styleName(o.Action, false), line)
}

// Preview prints the pending actions. Quiet mode does not apply.
func (p *Printer) Preview(actions []types.Outcome) {
	for _, o := range actions {
		line := fmt.Sprintf("%s %s", o.Action.Verb(types.TensePreview), o.Message())
		p.println(p.stdout, p.outStyles, styleName(o.Action, false), line)
	}
}

// Message prints an unstyled line to stdout
func (p *Printer) Message(format string, args ...interface{}) {
	fmt.Fprintf(p.stdout, format+"\n", args...)
}

// Error prints an unstyled line to stderr
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.stderr, format+"\n", args...)
}

// Prompt writes a prompt without a trailing newline
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.stdout, p.outStyles.Get("Prompt").Render(text))
}

func (p *Printer) println(w io.Writer, registry styles.Registry, style, line string) {
	fmt.Fprintln(w, registry.Get(style).Render(line))
}

// styleName maps an action to its style, e.g. "Rename" or "RenameError"
func styleName(a types.ActionType, failed bool) string {
	name := strings.ToUpper(string(a[:1])) + string(a[1:])
	if failed {
		name += "Error"
	}
	return name
}
