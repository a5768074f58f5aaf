// internal/state/context.go
package state

import (
	"github.com/charmbracelet/log"

	"go-survivors/internal/config"
	"go-survivors/internal/storage"
)

// Context carries everything states share: tuning, the run store and the
// logger. The store may be nil when persistence is disabled.
type Context struct {
	Cfg     config.Tuning
	Logger  *log.Logger
	Store   *storage.Store
	Loadout []string // spell definition IDs equipped at run start
}
