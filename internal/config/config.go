package config

import (
	"embed"
	"fmt"
	"time"

	"github.com/splitview/splitview/internal/divider"
)

//go:embed default
var configFS embed.FS

type Config struct {
	Split SplitConfig `toml:"split"`
	Keys  KeysConfig  `toml:"keys"`
	UI    UIConfig    `toml:"ui"`
}

type SplitConfig struct {
	Pivot               float64   `toml:"pivot"`
	Range               []float64 `toml:"range"`
	Expanded            bool      `toml:"expanded"`
	MinimumBottomHeight float64   `toml:"minimum_bottom_height"`
	ToggleSize          int       `toml:"toggle_size"`
	CancelReverts       bool      `toml:"cancel_reverts"`
	NudgeStep           float64   `toml:"nudge_step"`

	// Middle is the legacy name of Pivot.
	Middle *float64 `toml:"middle"`
}

type KeysConfig struct {
	Toggle    StringList `toml:"toggle"`
	NudgeUp   StringList `toml:"nudge_up"`
	NudgeDown StringList `toml:"nudge_down"`
	Reset     StringList `toml:"reset"`
	Cancel    StringList `toml:"cancel"`
	Quit      StringList `toml:"quit"`
}

type UIConfig struct {
	Colors map[string]Color `toml:"colors"`
	// FlashMessageDisplaySeconds is how long informational messages stay on
	// screen. Zero keeps them until dismissed.
	FlashMessageDisplaySeconds int `toml:"flash_message_display_seconds"`
}

// FlashTimeout returns the configured display time of flash messages.
func (c *Config) FlashTimeout() time.Duration {
	return time.Duration(max(c.UI.FlashMessageDisplaySeconds, 0)) * time.Second
}

// StringList allows TOML values to be specified as a string or array of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = StringList(out)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

// Color is either a plain foreground color string or a table of attributes.
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          *bool  `toml:"bold"`
	Italic        *bool  `toml:"italic"`
	Underline     *bool  `toml:"underline"`
	Strikethrough *bool  `toml:"strikethrough"`
	Reverse       *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		var out Color
		for key, raw := range v {
			switch key {
			case "fg", "bg":
				s, ok := raw.(string)
				if !ok {
					return fmt.Errorf("color %s: expected string, got %T", key, raw)
				}
				if key == "fg" {
					out.Fg = s
				} else {
					out.Bg = s
				}
			case "bold", "italic", "underline", "strikethrough", "reverse":
				b, ok := raw.(bool)
				if !ok {
					return fmt.Errorf("color %s: expected bool, got %T", key, raw)
				}
				switch key {
				case "bold":
					out.Bold = &b
				case "italic":
					out.Italic = &b
				case "underline":
					out.Underline = &b
				case "strikethrough":
					out.Strikethrough = &b
				case "reverse":
					out.Reverse = &b
				}
			default:
				return fmt.Errorf("unknown color attribute %q", key)
			}
		}
		*c = out
		return nil
	default:
		return fmt.Errorf("expected color string or table, got %T", value)
	}
}

// DividerConfig converts the split section into a divider configuration.
// The result is not validated.
func (c *Config) DividerConfig() (divider.Config, error) {
	if len(c.Split.Range) != 2 {
		return divider.Config{}, fmt.Errorf("%w: split.range must have exactly two values, got %d", divider.ErrInvalidConfig, len(c.Split.Range))
	}
	return divider.Config{
		Pivot:               c.Split.Pivot,
		Range:               divider.Range{Lo: c.Split.Range[0], Hi: c.Split.Range[1]},
		MinimumBottomHeight: c.Split.MinimumBottomHeight,
		Expanded:            c.Split.Expanded,
	}, nil
}
