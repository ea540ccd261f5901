// Package lsp implements a language server that reports the display width of
// characters in open documents.
package lsp

import (
	"context"
	"os"

	"github.com/elves/wcwidth/pkg/logutil"
	"github.com/elves/wcwidth/pkg/prog"
	"github.com/elves/wcwidth/pkg/rc"
	"github.com/sourcegraph/jsonrpc2"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the LSP subprogram.
type Program struct {
	run bool

	db *string
	rc *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "lsp", false, "run language server instead of measuring")
	p.db = fs.DB()
	p.rc = fs.RC()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	_, restore, err := rc.LoadAndApply(*p.rc, *p.db)
	if err != nil {
		return err
	}
	defer restore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newServer()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(s))
	logger.Println("serving")
	<-conn.DisconnectNotify()
	logger.Println("client disconnected")
	return nil
}

type transport struct{ in, out *os.File }

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	if err := c.in.Close(); err != nil {
		c.out.Close()
		return err
	}
	return c.out.Close()
}
