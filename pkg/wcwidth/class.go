package wcwidth

// Class is the category a character falls in, as determined by its width.
type Class int

// Possible values of Class.
const (
	ClassNarrow Class = iota
	ClassWide
	ClassCombining
	ClassControl
)

var classNames = [...]string{
	ClassNarrow:    "narrow",
	ClassWide:      "wide",
	ClassCombining: "combining",
	ClassControl:   "control",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ClassOf returns the class of r, taking overrides into account. NUL is
// classified as combining since it occupies no column.
func ClassOf(r rune) Class { return classOfWidth(OfRune(r)) }

// ClassOfCodepoint returns the class of the codepoint c, ignoring overrides.
func ClassOfCodepoint(c int) Class { return classOfWidth(OfCodepoint(c)) }

func classOfWidth(w int) Class {
	switch w {
	case Control:
		return ClassControl
	case 0:
		return ClassCombining
	case 2:
		return ClassWide
	}
	return ClassNarrow
}
