package wcwidth

import (
	"encoding/json"
	"testing"

	"github.com/elves/wcwidth/pkg/tt"
)

func TestClassOfCodepoint(t *testing.T) {
	tt.Test(t, ClassOfCodepoint,
		Args(0).Rets(ClassCombining),
		Args(7).Rets(ClassControl),
		Args(0x301).Rets(ClassCombining),
		Args(20320).Rets(ClassWide),
		Args(int('a')).Rets(ClassNarrow),
		Args(0x110000).Rets(ClassNarrow),
	)
}

func TestClassOf_Override(t *testing.T) {
	Override('a', 2)
	t.Cleanup(func() { Unoverride('a') })
	if c := ClassOf('a'); c != ClassWide {
		t.Errorf("ClassOf('a') with override = %v, want wide", c)
	}
	if c := ClassOfCodepoint('a'); c != ClassNarrow {
		t.Errorf("ClassOfCodepoint('a') with override = %v, want narrow", c)
	}
}

func TestClass_String(t *testing.T) {
	tt.Test(t, Class.String,
		Args(ClassNarrow).Rets("narrow"),
		Args(ClassWide).Rets("wide"),
		Args(ClassCombining).Rets("combining"),
		Args(ClassControl).Rets("control"),
		Args(Class(-1)).Rets("unknown"),
		Args(Class(10)).Rets("unknown"),
	)
}

func TestClass_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Class{"c": ClassWide})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"c":"wide"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
