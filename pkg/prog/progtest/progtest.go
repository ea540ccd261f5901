// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases created with ThatWcwidth.
package progtest

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/elves/wcwidth/pkg/must"
	"github.com/elves/wcwidth/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	stdout     output
	stderr     output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strconv.Quote(o.content)
	}
	return strconv.Quote(o.content)
}

// ThatWcwidth returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "wcwidth -bad-flag" exits with 2 reads
// like:
//
//	ThatWcwidth("-bad-flag").ExitsWith(2)
func ThatWcwidth(args ...string) Case {
	return Case{args: append([]string{"wcwidth"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatWcwidth("-override", "U+2771=2").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !matchOutput(r.stdout, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", r.stdout, c.want.stdout)
			}
			if !matchOutput(r.stderr, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", r.stderr, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the
// program's exit status and its outputs to stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r := run(p, args, stdin)
	return r.exitStatus, r.stdout.content, r.stderr.content
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := must.Pipe()
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Read stdout and stderr concurrently so that the program doesn't block
	// on a full pipe.
	stdout := make(chan string, 1)
	stderr := make(chan string, 1)
	go func() { stdout <- string(must.ReadAllAndClose(r1)) }()
	go func() { stderr <- string(must.ReadAllAndClose(r2)) }()

	exitStatus := prog.Run([3]*os.File{r0, w1, w2}, args, p)

	r0.Close()
	w1.Close()
	w2.Close()
	return result{exitStatus, output{content: <-stdout}, output{content: <-stderr}}
}

func matchOutput(got, want output) bool {
	if want.partial {
		return strings.Contains(got.content, want.content)
	}
	return got.content == want.content
}
