package wcwidth

import (
	"testing"

	"github.com/elves/wcwidth/pkg/tt"
)

func TestParseCodepoint(t *testing.T) {
	tt.Test(t, tt.Fn(ParseCodepoint).RetsFmt("(%v, %v)"),
		Args("U+4F60").Rets(rune(0x4F60), nil),
		Args("u+4f60").Rets(rune(0x4F60), nil),
		Args("0x4F60").Rets(rune(0x4F60), nil),
		Args("20320").Rets(rune(20320), nil),
		Args("7").Rets(rune(7), nil),
		Args("你").Rets(rune(0x4F60), nil),
		Args("U+10FFFF").Rets(rune(0x10FFFF), nil),
	)
}

func TestParseCodepoint_Errors(t *testing.T) {
	for _, s := range []string{"", "U+", "U+110000", "0xZZ", "ab", "-5", "\xff", "99999999999"} {
		if _, err := ParseCodepoint(s); err == nil {
			t.Errorf("ParseCodepoint(%q) did not error", s)
		}
	}
}
