// Package pprof adds profiling support to the wcwidth program.
package pprof

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/elves/wcwidth/pkg/prog"
)

// Program adds support for the -cpuprofile and -allocsprofile flags. It
// always defers to the next program, stopping the profiles in a cleanup.
type Program struct {
	cpuProfile    string
	allocsProfile string
}

func (p *Program) RegisterFlags(f *prog.FlagSet) {
	f.StringVar(&p.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	f.StringVar(&p.allocsProfile, "allocsprofile", "", "write memory allocation profile to file")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	if f := create(fds[2], p.cpuProfile, "CPU"); f != nil {
		pprof.StartCPUProfile(f)
		cleanups = append(cleanups, func([3]*os.File) {
			pprof.StopCPUProfile()
			f.Close()
		})
	}
	if f := create(fds[2], p.allocsProfile, "memory allocation"); f != nil {
		cleanups = append(cleanups, func([3]*os.File) {
			pprof.Lookup("allocs").WriteTo(f, 0)
			f.Close()
		})
	}
	return prog.NextProgram(cleanups...)
}

func create(stderr *os.File, name, what string) *os.File {
	if name == "" {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: cannot create %s profile: %v\n", what, err)
		fmt.Fprintf(stderr, "Continuing without %s profiling.\n", what)
		return nil
	}
	return f
}
