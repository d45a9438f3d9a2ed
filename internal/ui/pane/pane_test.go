package pane

import (
	"strings"
	"testing"

	"github.com/splitview/splitview/internal/ui/render"
	"github.com/splitview/splitview/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString("line")
		b.WriteByte(byte('0' + i%10))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRender_TitleAndContent(t *testing.T) {
	m := New("top", "Top", "alpha\r\nbeta\r\n")
	lines := test.RenderLines(m, 20, 4)

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Top")
	assert.Contains(t, lines[1], "alpha")
	assert.Contains(t, lines[2], "beta")
}

func TestRender_EmptyContent(t *testing.T) {
	m := New("top", "Top", "")
	lines := test.RenderLines(m, 20, 3)
	assert.Contains(t, lines[1], "(empty)")
}

func TestRender_TitleOnlyWhenOneRow(t *testing.T) {
	m := New("top", "Top", "alpha")
	dl := render.NewDisplayContext()
	m.Render(dl, test.Box(0, 0, 20, 1))
	assert.Empty(t, dl.InteractionsList())
}

func TestScroll_MovesContent(t *testing.T) {
	m := New("top", "Top", numbered(9))
	lines := test.RenderLines(m, 20, 4)
	require.Contains(t, lines[1], "line1")

	m.Update(ScrollMsg{ID: "top", Delta: 2})
	lines = test.RenderLines(m, 20, 4)
	assert.Contains(t, lines[1], "line3")

	m.Update(ScrollMsg{ID: "top", Delta: -1})
	lines = test.RenderLines(m, 20, 4)
	assert.Contains(t, lines[1], "line2")
}

func TestUpdate_IgnoresOtherPanes(t *testing.T) {
	m := New("top", "Top", numbered(9))
	test.RenderLines(m, 20, 4)

	m.Update(ScrollMsg{ID: "bottom", Delta: 2})
	lines := test.RenderLines(m, 20, 4)
	assert.Contains(t, lines[1], "line1")
}

func TestRender_RegistersWheelRegion(t *testing.T) {
	m := New("bottom", "Bottom", numbered(9))
	dl := render.NewDisplayContext()
	m.Render(dl, test.Box(0, 10, 20, 5))

	list := dl.InteractionsList()
	require.Len(t, list, 1)
	assert.Equal(t, render.InteractionScroll, list[0].Type)
	assert.Equal(t, 11, list[0].Rect.Min.Y)
	assert.Equal(t, ScrollMsg{ID: "bottom"}, list[0].Msg)
}
