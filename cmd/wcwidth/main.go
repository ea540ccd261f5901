// Wcwidth reports how many terminal columns strings and codepoints occupy. It
// also manages a database of width overrides and can serve width information
// to editors as a language server.
package main

import (
	"os"

	"github.com/elves/wcwidth/pkg/buildinfo"
	"github.com/elves/wcwidth/pkg/lsp"
	"github.com/elves/wcwidth/pkg/measure"
	"github.com/elves/wcwidth/pkg/pprof"
	"github.com/elves/wcwidth/pkg/prog"
	"github.com/elves/wcwidth/pkg/store"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &pprof.Program{}, &lsp.Program{},
			&store.Program{}, &measure.Program{})))
}
