package tui

import (
	"github.com/ksaito/pmdash/internal/usecase"
)

// Msg is the sealed interface for all dashboard messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgRefreshed carries freshly recomputed view models after any
// mutation. The whole screen re-renders from it; there is no
// incremental diffing.
type MsgRefreshed struct {
	Dashboard *usecase.DashboardOutput
	Projects  []usecase.ProjectRow
	Tasks     []usecase.TaskRow
	Table     []usecase.TaskRow
}

func (MsgRefreshed) sealed() {}

// MsgFlash shows a transient status line message.
type MsgFlash struct {
	Text    string
	IsError bool
}

func (MsgFlash) sealed() {}

// MsgThemeChanged is sent after the theme toggles.
type MsgThemeChanged struct {
	Styles Styles
}

func (MsgThemeChanged) sealed() {}
