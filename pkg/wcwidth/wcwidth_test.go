package wcwidth

import (
	"math"
	"testing"
	"unicode/utf16"

	"github.com/elves/wcwidth/pkg/testutil"
	"github.com/elves/wcwidth/pkg/tt"
)

var Args = tt.Args

func TestOfCodepoint(t *testing.T) {
	tt.Test(t, OfCodepoint,
		Args(0).Rets(0),
		// C0 controls and DEL..APC
		Args(1).Rets(-1),
		Args(31).Rets(-1),
		Args(127).Rets(-1),
		Args(159).Rets(-1),
		Args(-5).Rets(-1),
		// Edges of the control ranges
		Args(32).Rets(1),
		Args(126).Rets(1),
		Args(160).Rets(1),
		// Combining marks
		Args(0x300).Rets(0),
		Args(0x36F).Rets(0),
		Args(0x2FF).Rets(1),
		Args(0x370).Rets(1),
		Args(0x200B).Rets(0), // Zero width space
		Args(0xFEFF).Rets(0), // BOM
		Args(0xE0001).Rets(0),
		// Hangul syllables and their edges
		Args(44031).Rets(1),
		Args(44032).Rets(2),
		Args(55203).Rets(2),
		Args(55204).Rets(1),
		// CJK angle brackets
		Args(9000).Rets(1),
		Args(9001).Rets(2),
		Args(9002).Rets(2),
		Args(9003).Rets(1),
		// The hole in the CJK range
		Args(12350).Rets(2),
		Args(12351).Rets(1),
		Args(12352).Rets(2),
		// CJK Unified Ideographs are within 11904-42191
		Args(20320).Rets(2),
		// Supplementary ideographic planes
		Args(131071).Rets(1),
		Args(131072).Rets(2),
		Args(196605).Rets(2),
		Args(196606).Rets(1),
		Args(196607).Rets(1),
		Args(196608).Rets(2),
		Args(262141).Rets(2),
		Args(262142).Rets(1),
		// Out of Unicode range
		Args(0x110000).Rets(1),
		Args(math.MaxInt).Rets(1),
	)
}

func TestOfCodepoint_IsTotal(t *testing.T) {
	for c := -1000; c <= 0x110000+1000; c++ {
		switch w := OfCodepoint(c); w {
		case -1, 0, 1, 2:
		default:
			t.Fatalf("OfCodepoint(%d) = %d", c, w)
		}
	}
}

func TestOfCodepoint_ControlRanges(t *testing.T) {
	for c := 1; c <= 31; c++ {
		if w := OfCodepoint(c); w != Control {
			t.Errorf("OfCodepoint(%d) = %d, want %d", c, w, Control)
		}
	}
	for c := 127; c <= 159; c++ {
		if w := OfCodepoint(c); w != Control {
			t.Errorf("OfCodepoint(%d) = %d, want %d", c, w, Control)
		}
	}
}

func TestOfCodepoint_AllCombining(t *testing.T) {
	for _, iv := range Combining.All() {
		for r := iv.First; r <= iv.Last; r++ {
			if w := OfCodepoint(int(r)); w != 0 {
				t.Errorf("OfCodepoint(%d) = %d, want 0 (in %v)", r, w, iv)
			}
		}
	}
}

func TestOfCodepoint_WideBoundaries(t *testing.T) {
	for _, iv := range Wide.All() {
		for _, r := range []rune{iv.First, iv.Last} {
			want := 2
			if IsCombining(r) {
				want = 0
			}
			if w := OfCodepoint(int(r)); w != want {
				t.Errorf("OfCodepoint(%d) = %d, want %d", r, w, want)
			}
		}
		for _, r := range []rune{iv.First - 1, iv.Last + 1} {
			if Wide.Contains(r) || IsCombining(r) {
				continue
			}
			if w := OfCodepoint(int(r)); w != 1 {
				t.Errorf("OfCodepoint(%d) = %d, want 1 (next to %v)", r, w, iv)
			}
		}
	}
}

func TestOfCodepoint_CombiningInsideWide(t *testing.T) {
	// U+302A..U+302F are ideographic tone marks, inside 11904-42191.
	tt.Test(t, OfCodepoint,
		Args(0x302A).Rets(0),
		Args(0x302F).Rets(0),
		Args(0x3030).Rets(2),
	)
}

func TestAccessors(t *testing.T) {
	tt.Test(t, IsCombining,
		Args('\u0301').Rets(true),
		Args('a').Rets(false),
	)
	tt.Test(t, IsWide,
		Args('你').Rets(true),
		Args('a').Rets(false),
	)
	tt.Test(t, IsAmbiguous,
		Args('¡').Rets(true),
		Args('α').Rets(true),
		Args('a').Rets(false),
	)
}

func TestAmbiguousDoesNotAffectWidth(t *testing.T) {
	tt.Test(t, OfCodepoint,
		Args(int('¡')).Rets(1),
		Args(int('α')).Rets(1),
		Args(0xE000).Rets(1), // Private use
	)
}

func TestOfUTF16(t *testing.T) {
	tt.Test(t, OfUTF16,
		Args([]uint16(nil)).Rets(0),
		Args([]uint16{}).Rets(0),
		Args([]uint16{'a', 'b'}).Rets(2),
		Args([]uint16{0x301}).Rets(0),
		Args([]uint16{'a', '\n', 'b'}).Rets(1),
		Args([]uint16{'\t', '\t'}).Rets(-2),
		Args([]uint16{0}).Rets(0),
	)
}

func TestLength(t *testing.T) {
	tt.Test(t, Length,
		Args("").Rets(0),
		Args("abc").Rets(3),
		Args("你好").Rets(4),
		Args("é").Rets(1),
		Args("\u0301").Rets(0),
		Args("a\x1bb").Rets(1),
		// U+20000 is wide, but it is encoded as two surrogate halves, each
		// of which counts as one column.
		Args("\U00020000").Rets(2),
		// U+E0001 is a combining character, but its surrogate halves are not.
		Args("\U000E0001").Rets(2),
	)
}

func TestLength_IsSumOfCodeUnits(t *testing.T) {
	for _, s := range []string{"", "hello", "你好 world", "a\tb\x7f", "\U0001F600x", "\u0300\u0301"} {
		want := 0
		for _, u := range utf16.Encode([]rune(s)) {
			want += OfCodepoint(int(u))
		}
		if got := Length(s); got != want {
			t.Errorf("Length(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestOf(t *testing.T) {
	tt.Test(t, Of,
		Args("\u0301").Rets(0), // Combining acute accent
		Args("a").Rets(1),
		Args("Ω").Rets(1),
		Args("好").Rets(2),
		Args("か").Rets(2),

		Args("abc").Rets(3),
		Args("你好").Rets(4),
		Args("a\tb").Rets(1),
		// Full runes, unlike Length.
		Args("\U00020000").Rets(2),
		Args("\U000E0001").Rets(0),
	)
}

func TestOverride(t *testing.T) {
	r := '❱'
	oldw := OfRune(r)
	w := oldw + 1

	Override(r, w)
	if OfRune(r) != w {
		t.Errorf("OfRune(%q) != %d after Override", r, w)
	}
	if Overrides()[r] != w {
		t.Errorf("Overrides()[%q] != %d after Override", r, w)
	}
	Unoverride(r)
	if OfRune(r) != oldw {
		t.Errorf("OfRune(%q) != %d after Unoverride", r, oldw)
	}
	if _, ok := Overrides()[r]; ok {
		t.Errorf("Overrides() still has %q after Unoverride", r)
	}
}

func TestOverride_NegativeWidthRemovesOverride(t *testing.T) {
	Override('x', 2)
	Override('x', -1)
	if OfRune('x') != 1 {
		t.Errorf("Override with negative width did not remove override")
	}
}

func TestOverride_DoesNotAffectOfCodepointOrLength(t *testing.T) {
	Override('x', 2)
	defer Unoverride('x')
	if w := OfCodepoint('x'); w != 1 {
		t.Errorf("OfCodepoint('x') = %d, want 1", w)
	}
	if w := Length("x"); w != 1 {
		t.Errorf("Length(\"x\") = %d, want 1", w)
	}
	if w := Of("x"); w != 2 {
		t.Errorf("Of(\"x\") = %d, want 2", w)
	}
}

func TestOverrides_ReturnsSnapshot(t *testing.T) {
	Override('y', 2)
	defer Unoverride('y')
	m := Overrides()
	m['y'] = 0
	if OfRune('y') != 2 {
		t.Errorf("modifying the result of Overrides changed the override")
	}
}

func TestConcurrentOverride(t *testing.T) {
	testutil.Set(t, &override, map[rune]int{})
	done := make(chan struct{})
	go func() {
		Override('x', 2)
		close(done)
	}()
	_ = OfRune('x')
	<-done
}

func TestApplyOverrides(t *testing.T) {
	Override('a', 0)
	t.Cleanup(func() { Unoverride('a') })

	restore := ApplyOverrides(map[rune]int{'a': 2, 'b': 2})
	if w := OfRune('a'); w != 2 {
		t.Errorf("OfRune('a') after ApplyOverrides = %d, want 2", w)
	}
	if w := OfRune('b'); w != 2 {
		t.Errorf("OfRune('b') after ApplyOverrides = %d, want 2", w)
	}

	restore()
	if w := OfRune('a'); w != 0 {
		t.Errorf("OfRune('a') after restore = %d, want 0", w)
	}
	if _, ok := Overrides()['b']; ok {
		t.Errorf("override of 'b' survived restore")
	}
}

func TestApplyOverrides_Nested(t *testing.T) {
	restore1 := ApplyOverrides(map[rune]int{'c': 2})
	restore2 := ApplyOverrides(map[rune]int{'c': 0})
	if w := OfRune('c'); w != 0 {
		t.Errorf("OfRune('c') with nested overrides = %d, want 0", w)
	}
	restore2()
	if w := OfRune('c'); w != 2 {
		t.Errorf("OfRune('c') after inner restore = %d, want 2", w)
	}
	restore1()
	if w := OfRune('c'); w != 1 {
		t.Errorf("OfRune('c') after outer restore = %d, want 1", w)
	}
}
