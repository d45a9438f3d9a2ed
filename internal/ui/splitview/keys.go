package splitview

import (
	"charm.land/bubbles/v2/key"
	"github.com/splitview/splitview/internal/config"
)

type KeyMap struct {
	Toggle    key.Binding
	NudgeUp   key.Binding
	NudgeDown key.Binding
	Reset     key.Binding
	Cancel    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle bottom")),
		NudgeUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "divider up")),
		NudgeDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "divider down")),
		Reset:     key.NewBinding(key.WithKeys("="), key.WithHelp("=", "reset divider")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
	}
}

// KeyMapFromConfig builds a key map from configured keys. Actions without
// keys keep their defaults.
func KeyMapFromConfig(keys config.KeysConfig) KeyMap {
	km := DefaultKeyMap()
	rebind(&km.Toggle, keys.Toggle, "toggle bottom")
	rebind(&km.NudgeUp, keys.NudgeUp, "divider up")
	rebind(&km.NudgeDown, keys.NudgeDown, "divider down")
	rebind(&km.Reset, keys.Reset, "reset divider")
	rebind(&km.Cancel, keys.Cancel, "cancel drag")
	return km
}

func rebind(b *key.Binding, keys []string, desc string) {
	if len(keys) == 0 {
		return
	}
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NudgeUp, k.NudgeDown, k.Reset}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Cancel}}
}
