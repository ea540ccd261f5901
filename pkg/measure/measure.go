// Package measure implements the default subprogram, which reports the
// display width of strings and codepoints.
package measure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/elves/wcwidth/pkg/errutil"
	"github.com/elves/wcwidth/pkg/logutil"
	"github.com/elves/wcwidth/pkg/prog"
	"github.com/elves/wcwidth/pkg/rc"
	"github.com/elves/wcwidth/pkg/sys"
)

var logger = logutil.GetLogger("[measure] ")

// Program is the default subprogram. It measures its arguments, or the lines
// of stdin when there are no arguments.
type Program struct {
	utf16      bool
	codepoints bool
	trim       int
	fit        bool
	compare    bool
	strict     bool

	json *bool
	db   *string
	rc   *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.utf16, "utf16", false,
		"sum the widths of UTF-16 code units instead of runes")
	fs.BoolVar(&p.codepoints, "codepoints", false,
		"treat inputs as codepoints like U+4F60, 0x4F60 or 20320 and classify them")
	fs.IntVar(&p.trim, "trim", -1, "print inputs trimmed to the given width")
	fs.BoolVar(&p.fit, "fit", false, "print inputs trimmed to the terminal width")
	fs.BoolVar(&p.compare, "compare", false, "also show the width reported by go-runewidth")
	fs.BoolVar(&p.strict, "strict", false, "exit with 1 if any input contains a control character")
	p.json = fs.JSON()
	p.db = fs.DB()
	p.rc = fs.RC()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if p.trim >= 0 && p.fit {
		return prog.BadUsage("-trim and -fit cannot be used together")
	}
	if p.codepoints && (p.trim >= 0 || p.fit || p.utf16) {
		return prog.BadUsage("-codepoints cannot be used with -trim, -fit or -utf16")
	}

	cfg, restore, err := rc.LoadAndApply(*p.rc, *p.db)
	if err != nil {
		return err
	}
	defer restore()

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(fds[0])
		if err != nil {
			return err
		}
	}

	m := &measurer{
		out:      newPrinter(fds[1], *p.json),
		utf16:    p.utf16 || cfg.Mode == rc.ModeUTF16,
		compare:  p.compare,
		trim:     p.trim,
		tabWidth: cfg.TabWidth,
	}
	if p.fit {
		m.trim = sys.Columns(fds[1])
		logger.Println("fitting to", m.trim, "columns")
	}

	var errs []error
	controls := 0
	for i, input := range inputs {
		var ctrl, err error
		if p.codepoints {
			ctrl, err = m.codepoint(input)
		} else {
			ctrl = m.str(input)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ctrl != nil && p.strict {
			controls++
			fmt.Fprintf(fds[2], "input %d: %v\n", i+1, ctrl)
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		return err
	}
	if controls > 0 {
		return prog.Exit(1)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

type printer struct {
	w   io.Writer
	enc *json.Encoder
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	if asJSON {
		return &printer{w, json.NewEncoder(w)}
	}
	return &printer{w, nil}
}

// Print writes v as a JSON object in JSON mode, or the text line otherwise.
func (p *printer) Print(v any, text string) {
	if p.enc != nil {
		p.enc.Encode(v)
	} else {
		fmt.Fprintln(p.w, text)
	}
}
