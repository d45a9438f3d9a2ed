package common

import (
	tea "charm.land/bubbletea/v2"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

// ImmediateModel is a component that renders into a display context instead
// of returning a string.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}
