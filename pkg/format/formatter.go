package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/load"
)

type (
	// Options controls formatting behavior.
	Options struct {
		// IndentSize is the number of spaces continuation clauses are
		// indented by
		IndentSize int

		// UppercaseKeywords selects keyword casing; identifiers, values, and
		// grammar extension text are never touched
		UppercaseKeywords bool
	}

	// Formatter renders compiled load commands back to canonical command
	// text. Formatting a parsed program and reparsing it yields a
	// structurally equal program.
	Formatter struct {
		options *Options
	}
)

// Defaults are the standard formatting options.
var Defaults = &Options{
	IndentSize:        4,
	UppercaseKeywords: true,
}

// New creates a Formatter with the given options, falling back to Defaults
// when nil.
func New(options *Options) *Formatter {
	if options == nil {
		options = Defaults
	}

	return &Formatter{options: options}
}

// Format renders the given commands to w using the provided options. Each
// command ends with a semicolon and a newline; commands are separated by one
// blank line.
func Format(w io.Writer, options *Options, commands ...*load.Command) error {
	f := New(options)

	for i, cmd := range commands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "failed to write command separator")
			}
		}

		if err := f.Command(w, cmd); err != nil {
			return err
		}
	}

	return nil
}

// Program renders all commands of a compiled program.
func (f *Formatter) Program(w io.Writer, program *load.Program) error {
	return Format(w, f.options, program.Commands...)
}

// Command renders a single load command.
func (f *Formatter) Command(w io.Writer, cmd *load.Command) error {
	var text string

	switch {
	case cmd.File != nil:
		text = f.fileLoad(cmd.File)
	case cmd.Database != nil:
		text = f.databaseLoad(cmd.Database)
	case cmd.Syslog != nil:
		text = f.syslogLoad(cmd.Syslog)
	default:
		return errors.New("empty load command")
	}

	_, err := io.WriteString(w, text+";\n")
	return errors.Wrap(err, "failed to write command")
}

// keyword applies the configured keyword casing.
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}

	return strings.ToLower(kw)
}

// indent returns the continuation-line prefix.
func (f *Formatter) indent() string {
	return strings.Repeat(" ", f.options.IndentSize)
}
