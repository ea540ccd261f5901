package measure

import (
	"fmt"
	"strings"

	"github.com/elves/wcwidth/pkg/wcwidth"
	"github.com/mattn/go-runewidth"
)

type measurer struct {
	out      *printer
	utf16    bool
	compare  bool
	trim     int
	tabWidth int
}

type stringResult struct {
	Input     string `json:"input"`
	Width     int    `json:"width"`
	Output    string `json:"output,omitempty"`
	RuneWidth *int   `json:"runewidth,omitempty"`
	Control   bool   `json:"control,omitempty"`
}

type codepointResult struct {
	Codepoint string        `json:"codepoint"`
	Width     int           `json:"width"`
	Class     wcwidth.Class `json:"class"`
	Ambiguous bool          `json:"ambiguous"`
	RuneWidth *int          `json:"runewidth,omitempty"`
}

// Measures and prints one string. It returns the error from wcwidth.Check.
func (m *measurer) str(s string) error {
	ctrl := wcwidth.Check(s)
	res := stringResult{Input: s, Control: ctrl != nil}
	if m.utf16 {
		res.Width = wcwidth.Length(s)
	} else {
		res.Width = wcwidth.Of(s)
	}

	var text string
	if m.trim >= 0 {
		res.Output = wcwidth.Trim(expandTabs(s, m.tabWidth), m.trim)
		text = res.Output
	} else {
		text = fmt.Sprint(res.Width)
	}
	if m.compare {
		rw := runewidth.StringWidth(s)
		res.RuneWidth = &rw
		text += comparison(res.Width, rw)
	}
	m.out.Print(res, text)
	return ctrl
}

// Classifies and prints one codepoint. It returns a *wcwidth.ControlError if
// the codepoint is a control character, and an error if s is not a valid
// codepoint.
func (m *measurer) codepoint(s string) (ctrl, err error) {
	r, err := wcwidth.ParseCodepoint(s)
	if err != nil {
		return nil, err
	}
	res := codepointResult{
		Codepoint: fmt.Sprintf("%U", r),
		Width:     wcwidth.OfRune(r),
		Class:     wcwidth.ClassOf(r),
		Ambiguous: wcwidth.IsAmbiguous(r),
	}
	text := fmt.Sprintf("%s\t%d\t%s", res.Codepoint, res.Width, res.Class)
	if res.Ambiguous {
		text += "\tambiguous"
	}
	if m.compare {
		rw := runewidth.RuneWidth(r)
		res.RuneWidth = &rw
		text += comparison(res.Width, rw)
	}
	m.out.Print(res, text)
	if res.Class == wcwidth.ClassControl {
		return &wcwidth.ControlError{Rune: r}, nil
	}
	return nil, nil
}

func comparison(ours, theirs int) string {
	s := fmt.Sprintf("\trunewidth %d", theirs)
	if ours != theirs {
		s += "\tdiffers"
	}
	return s
}

// Replaces each tab with spaces up to the next multiple of tabWidth. Tabs are
// kept when tabWidth is 0, and then dropped by the layout functions.
func expandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		if w := wcwidth.OfRune(r); w > 0 {
			col += w
		}
	}
	return sb.String()
}
