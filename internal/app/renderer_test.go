package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		leading int
		want    string
	}{
		{name: "settled", leading: 0, want: "WXYZ"},
		{name: "pushed right", leading: 2, want: "abWX"},
		{name: "pulled left", leading: -1, want: "XYZd"},
		{name: "fully open", leading: -4, want: "abcd"},
		{name: "clamped", leading: 9, want: "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compose("abcd", "WXYZ", tt.leading, 4))
		})
	}
}

func TestRenderRowWidth(t *testing.T) {
	for _, side := range []string{"left", "right"} {
		t.Run(side, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.MenuSide = side
			m := newTestModel(t, cfg, 2)
			r := m.rows[0]
			r.item.Description = []string{"description [1]"}
			r.container.Apply(true)

			lines := m.renderRow(r, true)
			require.Len(t, lines, 2)
			for _, line := range lines {
				assert.Equal(t, testWidth, ansi.StringWidth(line))
			}
			plain := ansi.Strip(lines[0])
			assert.Contains(t, plain, "Pin")
			assert.Contains(t, plain, "Delete")
			if r.container.Side() == swipe.SideLeft {
				assert.True(t, strings.HasPrefix(plain, " "))
			}
		})
	}
}

func TestButtonHitTesting(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), 1)
	r := m.rows[0]
	left := testWidth - testMenuWidth

	assert.Equal(t, actionPin, r.buttonAt(left+1, 0, testWidth).action)
	assert.Equal(t, actionDelete, r.buttonAt(left+7, 0, testWidth).action)
	assert.Nil(t, r.buttonAt(left+6, 0, testWidth), "gap between buttons")
	assert.Nil(t, r.buttonAt(left+1, 1, testWidth), "buttons sit on the first line")
	assert.Nil(t, r.buttonAt(3, 0, testWidth))
}

func TestCellLayout(t *testing.T) {
	l := newCellLayout()
	l.Pin("row", "bg", "fg", swipe.SideLeft)
	assert.Equal(t, 0, l.MeasuredWidth("bg"))

	l.setMeasured("bg", 12)
	assert.Equal(t, 12, l.MeasuredWidth("bg"))

	l.SetMargins("fg", 4, -4)
	leading, trailing := l.margins("fg")
	assert.Equal(t, 4, leading)
	assert.Equal(t, -4, trailing)

	l.forget("row")
	assert.Equal(t, 0, l.MeasuredWidth("bg"))
	leading, _ = l.margins("fg")
	assert.Zero(t, leading)
	assert.Empty(t, l.pins)
}
