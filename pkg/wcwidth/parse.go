package wcwidth

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseCodepoint parses a codepoint written as "U+4F60", "0x4F60", a decimal
// number like "20320", or a string consisting of a single rune like "你". The
// result must be between 0 and U+10FFFF.
func ParseCodepoint(s string) (rune, error) {
	var v uint64
	var err error
	switch {
	case len(s) > 2 && (strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+")):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case s != "" && strings.Trim(s, "0123456789") == "":
		v, err = strconv.ParseUint(s, 10, 32)
	case utf8.RuneCountInString(s) == 1:
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && len(s) == 1 {
			return 0, fmt.Errorf("invalid codepoint %q", s)
		}
		return r, nil
	default:
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	if err != nil || v > utf8.MaxRune {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	return rune(v), nil
}
