package prog

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/elves/wcwidth/pkg/env"
)

// FlagSet wraps a [flag.FlagSet] and adds flags that are shared by more than
// one program. A shared flag is registered the first time its accessor is
// called, and subsequent calls return the same pointer.
type FlagSet struct {
	*flag.FlagSet
	json *bool
	db   *string
	rc   *string
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show output in JSON; useful with -buildinfo, -list-overrides and when measuring")
		fs.json = &json
	}
	return fs.json
}

// DB returns a pointer to the value of the -db flag, the path to the override
// database.
func (fs *FlagSet) DB() *string {
	if fs.db == nil {
		var db string
		fs.StringVar(&db, "db", "",
			"path to the override database; defaults to $WCWIDTH_DB or $XDG_STATE_HOME/wcwidth/db.bolt")
		fs.db = &db
	}
	return fs.db
}

// RC returns a pointer to the value of the -rc flag, the path to the rc file.
func (fs *FlagSet) RC() *string {
	if fs.rc == nil {
		var rc string
		fs.StringVar(&rc, "rc", "",
			"path to the rc file; defaults to $WCWIDTH_RC or $XDG_CONFIG_HOME/wcwidth/rc.yaml")
		fs.rc = &rc
	}
	return fs.rc
}

// DBPath resolves the path of the override database: the explicit value if
// non-empty, then $WCWIDTH_DB, then $XDG_STATE_HOME/wcwidth/db.bolt, then
// ~/.local/state/wcwidth/db.bolt. It returns "" if none can be determined.
func DBPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(env.WCWIDTH_DB); p != "" {
		return p
	}
	if p := os.Getenv(env.XDG_STATE_HOME); p != "" {
		return filepath.Join(p, "wcwidth", "db.bolt")
	}
	if home := os.Getenv(env.HOME); home != "" {
		return filepath.Join(home, ".local", "state", "wcwidth", "db.bolt")
	}
	return ""
}
