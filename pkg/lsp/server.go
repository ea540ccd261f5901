package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/elves/wcwidth/pkg/wcwidth"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	mutex   sync.Mutex
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{content: make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":             s.initialize,
		"textDocument/didOpen":   s.didOpen,
		"textDocument/didChange": s.didChange,
		"textDocument/didClose":  s.didClose,
		"textDocument/hover":     s.hover,

		// Required by the protocol.
		"initialized": noop,
		"shutdown":    noop,
		"exit":        noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider: true,
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.setContent(uri, content)
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.setContent(uri, content)
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.getContent(params.TextDocument.URI)
	idx := lspPositionToIdx(content, params.Position)
	if idx >= len(content) {
		return lsp.Hover{}, nil
	}
	r, size := decodeRune(content[idx:])
	return lsp.Hover{
		Contents: []lsp.MarkedString{{Language: "text", Value: describe(r)}},
		Range: &lsp.Range{
			Start: lspPositionFromIdx(content, idx),
			End:   lspPositionFromIdx(content, idx+size),
		},
	}, nil
}

func (s *server) setContent(uri lsp.DocumentURI, content string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.content[uri] = content
}

func (s *server) getContent(uri lsp.DocumentURI) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.content[uri]
}

func describe(r rune) string {
	w := wcwidth.OfRune(r)
	desc := fmt.Sprintf("%U width %d (%s)", r, w, wcwidth.ClassOf(r))
	if wcwidth.IsAmbiguous(r) {
		desc += ", ambiguous"
	}
	return desc
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(content)})
}

func diagnostics(content string) []lsp.Diagnostic {
	diags := []lsp.Diagnostic{}
	for i, r := range content {
		var severity lsp.DiagnosticSeverity
		var message string
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			continue
		case wcwidth.OfRune(r) == wcwidth.Control:
			severity, message = lsp.Error, fmt.Sprintf("control character %U", r)
		case wcwidth.IsAmbiguous(r):
			severity, message = lsp.Information,
				fmt.Sprintf("%U has ambiguous width", r)
		default:
			continue
		}
		_, size := decodeRune(content[i:])
		diags = append(diags, lsp.Diagnostic{
			Range: lsp.Range{
				Start: lspPositionFromIdx(content, i),
				End:   lspPositionFromIdx(content, i+size),
			},
			Severity: severity,
			Source:   "wcwidth",
			Message:  message,
		})
	}
	return diags
}
