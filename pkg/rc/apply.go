package rc

import (
	"github.com/elves/wcwidth/pkg/prog"
	"github.com/elves/wcwidth/pkg/store"
	"github.com/elves/wcwidth/pkg/wcwidth"
)

// LoadAndApply loads the rc file named by the -rc flag and the overrides in
// the database named by the -db flag, and installs the overrides from both,
// the database taking precedence. It returns the configuration and a function
// that restores the overrides in effect before.
func LoadAndApply(rcFlag, dbFlag string) (*Config, func(), error) {
	cfg, err := Load(Path(rcFlag), rcFlag != "")
	if err != nil {
		return nil, nil, err
	}
	stored, err := store.ReadOverrides(prog.DBPath(dbFlag))
	if err != nil {
		return nil, nil, err
	}
	restoreRC := cfg.Apply()
	restoreDB := wcwidth.ApplyOverrides(stored)
	return cfg, func() {
		restoreDB()
		restoreRC()
	}, nil
}
