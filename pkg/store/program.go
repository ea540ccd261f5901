package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/elves/wcwidth/pkg/prog"
	"github.com/elves/wcwidth/pkg/store/storedefs"
	"github.com/elves/wcwidth/pkg/wcwidth"
)

// Program is the subprogram for managing the override database, activated by
// the -override, -unoverride and -list-overrides flags.
type Program struct {
	set   []override
	unset []rune
	list  bool

	db   *string
	json *bool
}

type override struct {
	r rune
	w int
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.set, p.unset, p.list = nil, nil, false
	fs.Func("override",
		"store a width override in the database, like U+2771=2 (may be repeated)",
		func(s string) error {
			o, err := parseOverride(s)
			if err == nil {
				p.set = append(p.set, o)
			}
			return err
		})
	fs.Func("unoverride",
		"remove a width override from the database, like U+2771 (may be repeated)",
		func(s string) error {
			r, err := wcwidth.ParseCodepoint(s)
			if err == nil {
				p.unset = append(p.unset, r)
			}
			return err
		})
	fs.BoolVar(&p.list, "list-overrides", false, "list the overrides in the database")
	p.db = fs.DB()
	p.json = fs.JSON()
}

func parseOverride(s string) (override, error) {
	i := strings.LastIndexByte(s, '=')
	if i == -1 {
		return override{}, fmt.Errorf("override %q is not of the form codepoint=width", s)
	}
	r, err := wcwidth.ParseCodepoint(s[:i])
	if err != nil {
		return override{}, err
	}
	w, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return override{}, fmt.Errorf("invalid width in override %q", s)
	}
	return override{r, w}, nil
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(p.set) == 0 && len(p.unset) == 0 && !p.list {
		return prog.ErrNextProgram
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed when managing overrides")
	}
	// Reject the whole batch before writing anything.
	for _, o := range p.set {
		if o.w < 0 || o.w > storedefs.MaxWidth {
			return &storedefs.InvalidWidthError{Rune: o.r, Width: o.w}
		}
	}
	dbname := prog.DBPath(*p.db)
	if dbname == "" {
		return errors.New("cannot determine the database path; use -db")
	}
	st, err := NewStore(dbname)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	for _, o := range p.set {
		logger.Printf("setting override %U -> %d", o.r, o.w)
		if err := st.SetOverride(o.r, o.w); err != nil {
			return err
		}
	}
	for _, r := range p.unset {
		logger.Printf("removing override %U", r)
		if err := st.DelOverride(r); err != nil {
			return err
		}
	}
	if p.list {
		overrides, err := st.Overrides()
		if err != nil {
			return err
		}
		printOverrides(fds[1], overrides, *p.json)
	}
	return nil
}

func printOverrides(out *os.File, overrides map[rune]int, asJSON bool) {
	runes := make([]rune, 0, len(overrides))
	for r := range overrides {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	if asJSON {
		m := make(map[string]int, len(overrides))
		for r, w := range overrides {
			m[fmt.Sprintf("%U", r)] = w
		}
		b, _ := json.Marshal(m)
		fmt.Fprintln(out, string(b))
		return
	}
	for _, r := range runes {
		fmt.Fprintf(out, "%U\t%d\n", r, overrides[r])
	}
}
