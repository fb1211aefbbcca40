package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetThemeKnownNames(t *testing.T) {
	for _, name := range AvailableThemes() {
		thm := GetTheme(name)
		if assert.NotNil(t, thm, name) {
			assert.NotEmpty(t, thm.MenuBg, name)
			assert.NotEmpty(t, thm.DeleteBg, name)
		}
	}
}

func TestGetThemeFallsBackToDracula(t *testing.T) {
	assert.Equal(t, Dracula(), GetTheme("does-not-exist"))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DefaultLight()))
	assert.False(t, IsLight(DefaultDark()))
	assert.True(t, IsLight(SolarizedLightName))
	assert.False(t, IsLight(NordName))
}
