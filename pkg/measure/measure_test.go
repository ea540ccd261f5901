package measure_test

import (
	"path/filepath"
	"testing"

	"github.com/elves/wcwidth/pkg/env"
	"github.com/elves/wcwidth/pkg/measure"
	"github.com/elves/wcwidth/pkg/must"
	. "github.com/elves/wcwidth/pkg/prog/progtest"
	"github.com/elves/wcwidth/pkg/store"
	"github.com/elves/wcwidth/pkg/testutil"
	"github.com/elves/wcwidth/pkg/wcwidth"
)

// Isolates the program from the rc file and database of the user.
func setup(t *testing.T) string {
	dir := testutil.InTempDir(t)
	for _, name := range []string{
		env.WCWIDTH_RC, env.WCWIDTH_DB, env.XDG_CONFIG_HOME, env.XDG_STATE_HOME} {
		testutil.Setenv(t, name, "")
	}
	testutil.Setenv(t, env.HOME, dir)
	return dir
}

func TestMeasure(t *testing.T) {
	setup(t)
	Test(t, &measure.Program{},
		ThatWcwidth("abc", "你好", "a\u0301", "").
			WritesStdout("3\n4\n1\n0\n"),
		ThatWcwidth().WithStdin("ab\n你\n").
			WritesStdout("2\n2\n"),
		ThatWcwidth().DoesNothing(),

		// Runes outside the BMP
		ThatWcwidth("\U0001F600").WritesStdout("1\n"),
		ThatWcwidth("-utf16", "\U0001F600").WritesStdout("2\n"),
		ThatWcwidth("-utf16", "\U00020000").WritesStdout("2\n"),

		ThatWcwidth("-json", "你", "a\x07").WritesStdout(
			`{"input":"你","width":2}` + "\n" +
				`{"input":"a\u0007","width":0,"control":true}` + "\n"),
	)
}

func TestMeasure_Codepoints(t *testing.T) {
	setup(t)
	Test(t, &measure.Program{},
		ThatWcwidth("-codepoints", "20320", "0x301", "U+00A1", "7", "0").
			WritesStdout("U+4F60\t2\twide\n" +
				"U+0301\t0\tcombining\n" +
				"U+00A1\t1\tnarrow\tambiguous\n" +
				"U+0007\t-1\tcontrol\n" +
				"U+0000\t0\tcombining\n"),
		ThatWcwidth("-codepoints", "-json", "20320").
			WritesStdout(`{"codepoint":"U+4F60","width":2,"class":"wide","ambiguous":false}` + "\n"),
		ThatWcwidth("-codepoints", "bad", "a", "U+ZZ").
			ExitsWith(2).
			WritesStdout("U+0061\t1\tnarrow\n").
			WritesStderr("invalid codepoint \"bad\"\ninvalid codepoint \"U+ZZ\"\n"),
		ThatWcwidth("-codepoints", "-trim", "3").
			ExitsWith(2).
			WritesStderrContaining("-codepoints cannot be used with -trim, -fit or -utf16\nUsage:"),
	)
}

func TestMeasure_Strict(t *testing.T) {
	setup(t)
	Test(t, &measure.Program{},
		ThatWcwidth("a\x07b").WritesStdout("1\n"),
		ThatWcwidth("-strict", "ok", "a\x07b").
			ExitsWith(1).
			WritesStdout("2\n1\n").
			WritesStderr("input 2: control character U+0007 at byte 1\n"),
		ThatWcwidth("-strict", "-codepoints", "0x1B").
			ExitsWith(1).
			WritesStdout("U+001B\t-1\tcontrol\n").
			WritesStderr("input 1: control character U+001B at byte 0\n"),
		ThatWcwidth("-strict", "fine").WritesStdout("4\n"),
	)
}

func TestMeasure_Trim(t *testing.T) {
	setup(t)
	Test(t, &measure.Program{},
		ThatWcwidth("-trim", "3", "你好吗", "abcd", "a\x07bcd").
			WritesStdout("你\nabc\nabc\n"),
		ThatWcwidth("-trim", "0", "abc").WritesStdout("\n"),
		ThatWcwidth("-trim", "20", "a\tb").WritesStdout("a       b\n"),
		ThatWcwidth("-trim", "3", "-json", "你好吗").
			WritesStdout(`{"input":"你好吗","width":6,"output":"你"}` + "\n"),
		// Stdout is not a terminal in tests.
		ThatWcwidth("-fit", "abc").WritesStdout("abc\n"),
		ThatWcwidth("-fit", "-trim", "1").
			ExitsWith(2).
			WritesStderrContaining("-trim and -fit cannot be used together\nUsage:"),
	)
}

func TestMeasure_Compare(t *testing.T) {
	setup(t)
	Test(t, &measure.Program{},
		ThatWcwidth("-compare", "你", "\U0001F600").
			WritesStdout("2\trunewidth 2\n1\trunewidth 2\tdiffers\n"),
		ThatWcwidth("-compare", "-codepoints", "U+4F60").
			WritesStdout("U+4F60\t2\twide\trunewidth 2\n"),
		ThatWcwidth("-compare", "-json", "ab").
			WritesStdout(`{"input":"ab","width":2,"runewidth":2}` + "\n"),
	)
}

func TestMeasure_RC(t *testing.T) {
	dir := setup(t)
	testutil.ApplyDir(testutil.Dir{
		"rc.yaml":    "overrides:\n  U+2771: 2\ntab-width: 2\n",
		"utf16.yaml": "overrides:\n  U+2771: 2\nmode: utf16\n",
		"bad.yaml":   "mode: bytes\n",
	})

	Test(t, &measure.Program{},
		ThatWcwidth("-rc", "rc.yaml", "\u2771", "\U0001F600").
			WritesStdout("2\n1\n"),
		// The UTF-16 accumulator doesn't consult overrides.
		ThatWcwidth("-rc", "utf16.yaml", "\u2771", "\U0001F600").
			WritesStdout("1\n2\n"),
		ThatWcwidth("-rc", "rc.yaml", "-trim", "10", "a\tb").
			WritesStdout("a b\n"),
		ThatWcwidth("-rc", "missing.yaml", "x").
			ExitsWith(2).
			WritesStderrContaining("no such file or directory"),
		ThatWcwidth("-rc", "bad.yaml", "x").
			ExitsWith(2).
			WritesStderr("bad.yaml: invalid mode \"bytes\", must be rune or utf16\n"),
	)
	if w := wcwidth.OfRune(0x2771); w != 1 {
		t.Errorf("override from rc file leaked: OfRune(U+2771) = %d", w)
	}

	// The rc file in the default location is optional but used when present.
	testutil.Setenv(t, env.XDG_CONFIG_HOME, dir)
	testutil.ApplyDir(testutil.Dir{"wcwidth": testutil.Dir{"rc.yaml": "overrides:\n  a: 2\n"}})
	Test(t, &measure.Program{},
		ThatWcwidth("a").WritesStdout("2\n"),
	)
}

func TestMeasure_StoredOverrides(t *testing.T) {
	dir := setup(t)
	db := filepath.Join(dir, "db.bolt")
	st := must.OK1(store.NewStore(db))
	must.OK(st.SetOverride('x', 2))
	must.OK(st.Close())

	Test(t, &measure.Program{},
		ThatWcwidth("-db", db, "x").WritesStdout("2\n"),
		ThatWcwidth("-db", filepath.Join(dir, "none.bolt"), "x").WritesStdout("1\n"),
		ThatWcwidth("x").WritesStdout("1\n"),
	)

	testutil.Setenv(t, env.WCWIDTH_DB, db)
	Test(t, &measure.Program{},
		ThatWcwidth("x").WritesStdout("2\n"),
	)
}
