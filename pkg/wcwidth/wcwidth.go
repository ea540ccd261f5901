// Package wcwidth provides utilities for determining the column width of
// characters when displayed on the terminal.
//
// The classification is table-driven. A codepoint is a control character
// (width -1), a combining character (width 0), a wide character (width 2) or
// a normal character (width 1). Width -1 is an anomaly that callers should
// report rather than lay out; see Check.
//
// Two accumulators are provided. Length works on UTF-16 code units and thus
// counts each half of a surrogate pair as a separate narrow character; Of
// works on runes.
package wcwidth

import "unicode/utf16"

// Control is the width of control characters.
const Control = -1

// OfCodepoint returns the column width of the codepoint c. It is defined for
// all ints; values that are not valid codepoints are normal characters unless
// they are negative, in which case they are control characters.
func OfCodepoint(c int) int {
	switch {
	case c == 0:
		return 0
	case c < 32 || (c >= 0x7f && c < 0xa0):
		return Control
	case c > maxTableRune:
		return 1
	case Combining.Contains(rune(c)):
		return 0
	case Wide.Contains(rune(c)):
		return 2
	}
	return 1
}

// Largest codepoint that may appear in any table. Larger ints are handled
// before the conversion to rune, which could otherwise wrap around.
const maxTableRune = 0x10FFFF

// IsCombining reports whether r is a zero-width combining character.
func IsCombining(r rune) bool { return Combining.Contains(r) }

// IsWide reports whether r is in the table of wide characters.
func IsWide(r rune) bool { return Wide.Contains(r) }

// IsAmbiguous reports whether r has East Asian ambiguous width. The result
// does not affect any width computed by this package.
func IsAmbiguous(r rune) bool { return Ambiguous.Contains(r) }

// OfUTF16 returns the sum of the column widths of all the UTF-16 code units.
// Control characters contribute -1 each, so the result may be negative.
func OfUTF16(units []uint16) int {
	w := 0
	for _, u := range units {
		w += OfCodepoint(int(u))
	}
	return w
}

// Length returns the column width of s, computed by OfUTF16 on the UTF-16
// encoding of s. Runes outside the Basic Multilingual Plane are encoded as
// surrogate pairs, and each half counts as one column.
func Length(s string) int {
	return OfUTF16(utf16.Encode([]rune(s)))
}

// OfRune returns the column width of a rune, taking overrides into account.
func OfRune(r rune) int {
	if w, ok := getOverride(r); ok {
		return w
	}
	return OfCodepoint(int(r))
}

// Of returns the column width of a string, which is the sum of OfRune of all
// its runes. Control characters contribute -1 each.
func Of(s string) int {
	w := 0
	for _, r := range s {
		w += OfRune(r)
	}
	return w
}
