package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/splitview/splitview/internal/divider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config, err := DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.5, config.Split.Pivot)
	assert.Equal(t, []float64{0.2, 0.8}, config.Split.Range)
	assert.True(t, config.Split.Expanded)
	assert.Equal(t, 3.0, config.Split.MinimumBottomHeight)
	assert.Equal(t, 1, config.Split.ToggleSize)
	assert.True(t, config.Split.CancelReverts)
	assert.Equal(t, 1.0, config.Split.NudgeStep)
	assert.Equal(t, StringList{"ctrl+t"}, config.Keys.Toggle)
	assert.Equal(t, StringList{"shift+up", "K"}, config.Keys.NudgeUp)
	assert.Contains(t, config.UI.Colors, "divider dragging")

	dc, err := config.DividerConfig()
	require.NoError(t, err)
	_, err = divider.New(dc)
	assert.NoError(t, err)
}

func TestLoad_OverridesSplit(t *testing.T) {
	config, err := DefaultConfig()
	require.NoError(t, err)

	content := `
[split]
pivot = 0.3
range = [0.1, 0.9]
expanded = false
`
	require.NoError(t, config.Load(content))

	dc, err := config.DividerConfig()
	require.NoError(t, err)
	assert.Equal(t, divider.Config{
		Pivot:               0.3,
		Range:               divider.Range{Lo: 0.1, Hi: 0.9},
		MinimumBottomHeight: 3,
		Expanded:            false,
	}, dc)
}

func TestLoad_MiddleIsLegacyPivot(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.Load("[split]\nmiddle = 0.4\n"))
	assert.Equal(t, 0.4, config.Split.Pivot)

	config = &Config{}
	require.NoError(t, config.Load("[split]\nmiddle = 0.4\npivot = 0.6\n"))
	assert.Equal(t, 0.6, config.Split.Pivot)
}

func TestLoad_RejectsNonPositiveNudgeStep(t *testing.T) {
	config := &Config{}
	assert.Error(t, config.Load("[split]\nnudge_step = 0\n"))
}

func TestLoad_RejectsNegativeToggleSize(t *testing.T) {
	config := &Config{}
	assert.Error(t, config.Load("[split]\ntoggle_size = -1\n"))
}

func TestLoad_InvalidToml(t *testing.T) {
	config := &Config{}
	assert.Error(t, config.Load("[split\npivot = "))
}

func TestDividerConfig_RangeArity(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.Load("[split]\npivot = 0.5\nrange = [0.2]\n"))

	_, err := config.DividerConfig()
	assert.ErrorIs(t, err, divider.ErrInvalidConfig)
}

func TestLoad_Keys_StringAndList(t *testing.T) {
	content := `
[keys]
toggle = "tab"
reset = ["=", "0"]
`
	config := &Config{}
	require.NoError(t, config.Load(content))
	assert.Equal(t, StringList{"tab"}, config.Keys.Toggle)
	assert.Equal(t, StringList{"=", "0"}, config.Keys.Reset)
}

func TestLoad_Keys_RejectsNonString(t *testing.T) {
	config := &Config{}
	assert.Error(t, config.Load("[keys]\ntoggle = [1, 2]\n"))
}

func TestLoad_Colors_StringAndObject(t *testing.T) {
	content := `
[ui.colors]
simple = "red"
complex = { fg = "blue", bg = "white", bold = true }
`
	config := &Config{}
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Len(t, config.UI.Colors, 2)

	assert.Equal(t, "red", config.UI.Colors["simple"].Fg)
	assert.Equal(t, "", config.UI.Colors["simple"].Bg)
	assert.Nil(t, config.UI.Colors["simple"].Bold)

	assert.Equal(t, "blue", config.UI.Colors["complex"].Fg)
	assert.Equal(t, "white", config.UI.Colors["complex"].Bg)
	if assert.NotNil(t, config.UI.Colors["complex"].Bold) {
		assert.True(t, *config.UI.Colors["complex"].Bold)
	}
}

func TestLoad_Colors_MergeOntoDefaults(t *testing.T) {
	config, err := DefaultConfig()
	require.NoError(t, err)

	require.NoError(t, config.Load("[ui.colors]\ntoggle = \"red\"\n"))
	assert.Equal(t, "red", config.UI.Colors["toggle"].Fg)
	assert.Equal(t, "8", config.UI.Colors["divider"].Fg)
}

func TestLoad_Colors_UnknownAttribute(t *testing.T) {
	config := &Config{}
	assert.Error(t, config.Load("[ui.colors]\nx = { blink = true }\n"))
}

func TestLoadConfig_UserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPLITVIEW_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[split]\nmiddle = 0.35\n"), 0o644))

	config, warnings, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.35, config.Split.Pivot)
	assert.Len(t, warnings, 1)
	assert.Equal(t, dir, GetConfigDir())
}

func TestLoadConfig_MissingUserFile(t *testing.T) {
	t.Setenv("SPLITVIEW_CONFIG_DIR", t.TempDir())

	config, warnings, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 0.5, config.Split.Pivot)
}

func TestLoadConfig_BrokenUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPLITVIEW_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[split\n"), 0o644))

	_, _, err := LoadConfig()
	assert.Error(t, err)
}

func TestFlashTimeout(t *testing.T) {
	config, err := DefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, config.FlashTimeout())

	require.NoError(t, config.Load("[ui]\nflash_message_display_seconds = -2\n"))
	assert.Zero(t, config.FlashTimeout())
}
