package lsp

import (
	"strings"
	"unicode/utf8"

	lsp "github.com/sourcegraph/go-lsp"
)

func decodeRune(s string) (rune, int) { return utf8.DecodeRuneInString(s) }

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r' && strings.HasPrefix(s[i+1:], "\n"):
			// The \n of a \r\n sequence ends the line
		case r == '\r' || r == '\n':
			p.Line++
			p.Character = 0
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
	}
	f(len(s), p)
}
