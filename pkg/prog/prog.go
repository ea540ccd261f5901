// Package prog supports building testable, composable programs.
//
// The main abstraction of this package is [Program]. The wcwidth binary is
// built by composing several programs with [Composite]: each program
// registers its own flags, and the first program that doesn't return
// [ErrNextProgram] from Run handles the invocation.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/elves/wcwidth/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the flags the program accepts.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram.
	Run(fds [3]*os.File, args []string) error
}

var logger = logutil.GetLogger("[prog] ")

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: wcwidth [flags] [string ...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("wcwidth", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var log string
	var help bool
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	p.RegisterFlags(&FlagSet{FlagSet: fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if log != "" {
		err = logutil.SetOutputFile(log)
		if err == nil {
			defer logutil.SetOutput(io.Discard)
		} else {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	logger.Println("running with args", args)
	err = p.Run(fds, fs.Args())
	if np, ok := err.(nextProgramError); ok {
		runCleanups(np.cleanups, fds)
	}
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.exit
	}
	var badUsage badUsageError
	if errors.As(err, &badUsage) {
		usage(fds[2], fs)
	}
	return 2
}

// Composite returns a Program made up of all the given programs. Its
// RegisterFlags method registers the flags of all the programs. Its Run
// method tries each program in turn, stopping at the first one that doesn't
// return an error created by NextProgram.
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(f *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(f)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	var cleanups []func([3]*os.File)
	for _, p := range cp {
		err := p.Run(fds, args)
		if np, ok := err.(nextProgramError); ok {
			cleanups = append(cleanups, np.cleanups...)
		} else {
			runCleanups(cleanups, fds)
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNextProgram
	return NextProgram(cleanups...)
}

func runCleanups(cleanups []func([3]*os.File), fds [3]*os.File) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](fds)
	}
}

// NextProgram returns a special error that may be returned by Program.Run
// when it is part of a Composite program, indicating that the next program
// should be tried. It can carry a list of cleanup functions, which are run in
// reverse order before the composite program finishes.
func NextProgram(cleanups ...func([3]*os.File)) error {
	return nextProgramError{cleanups}
}

// ErrNextProgram is shorthand for NextProgram().
var ErrNextProgram error = nextProgramError{}

type nextProgramError struct{ cleanups []func([3]*os.File) }

// If this error ever gets printed, it has been bubbled to [Run] when all
// programs have returned this error type.
func (e nextProgramError) Error() string {
	return "internal error: no suitable subprogram"
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
