package wcwidth

import (
	"fmt"
	"strings"
)

// The layout functions in this file never lay out control characters: a rune
// whose width is negative is left out of the result.

// Trim trims the string s so that it is no wider than wmax.
func Trim(s string, wmax int) string {
	var sb strings.Builder
	for _, r := range s {
		w := OfRune(r)
		if w < 0 {
			continue
		}
		wmax -= w
		if wmax < 0 {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Force forces the string s to the given display width by trimming and
// padding.
func Force(s string, width int) string {
	t := Trim(s, width)
	if pad := width - Of(t); pad > 0 {
		return t + strings.Repeat(" ", pad)
	}
	return t
}

// TrimEachLine trims each line of s so that it is no wider than the specified
// width.
func TrimEachLine(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = Trim(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// ControlError is returned by Check when a string contains a control
// character.
type ControlError struct {
	Rune rune
	// Byte index of the rune.
	Index int
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("control character %U at byte %d", e.Rune, e.Index)
}

// Check returns a *ControlError for the first control character in s, or nil
// if there is none.
func Check(s string) error {
	for i, r := range s {
		if OfRune(r) < 0 {
			return &ControlError{r, i}
		}
	}
	return nil
}
