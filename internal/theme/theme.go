// Package theme provides colour themes for the swipe list.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colours used in the UI.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // Text on Accent
	AccentDim lipgloss.Color // Cursor row background
	Border    lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	SuccessFg lipgloss.Color
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color

	// Menu layer revealed behind a row.
	MenuBg     lipgloss.Color
	MenuFg     lipgloss.Color
	PinBg      lipgloss.Color
	DeleteBg   lipgloss.Color
	DisabledFg lipgloss.Color // Buttons that cannot be clicked yet
}

// Theme names.
const (
	DraculaName        = "dracula"
	DraculaLightName   = "dracula-light"
	NarnaName          = "narna"
	NordName           = "nord"
	GruvboxDarkName    = "gruvbox-dark"
	SolarizedLightName = "solarized-light"
)

// Dracula returns the Dracula theme.
func Dracula() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#BD93F9"),
		AccentFg:   lipgloss.Color("#282A36"),
		AccentDim:  lipgloss.Color("#44475A"),
		Border:     lipgloss.Color("#6272A4"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		WarnFg:     lipgloss.Color("#FFB86C"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		MenuBg:     lipgloss.Color("#21222C"),
		MenuFg:     lipgloss.Color("#F8F8F2"),
		PinBg:      lipgloss.Color("#6272A4"),
		DeleteBg:   lipgloss.Color("#FF5555"),
		DisabledFg: lipgloss.Color("#44475A"),
	}
}

// DraculaLight returns Dracula adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#C6DBE5"),
		AccentFg:   lipgloss.Color("#24292F"),
		AccentDim:  lipgloss.Color("#F3E8FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		SuccessFg:  lipgloss.Color("#059669"),
		WarnFg:     lipgloss.Color("#D97706"),
		ErrorFg:    lipgloss.Color("#DC2626"),
		MenuBg:     lipgloss.Color("#EAEEF2"),
		MenuFg:     lipgloss.Color("#FFFFFF"),
		PinBg:      lipgloss.Color("#0891B2"),
		DeleteBg:   lipgloss.Color("#DC2626"),
		DisabledFg: lipgloss.Color("#D0D7DE"),
	}
}

// Narna returns a dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#41ADFF"),
		AccentFg:   lipgloss.Color("#0D1117"),
		AccentDim:  lipgloss.Color("#1A2230"),
		Border:     lipgloss.Color("#30363D"),
		MutedFg:    lipgloss.Color("#8B949E"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		SuccessFg:  lipgloss.Color("#3FB950"),
		WarnFg:     lipgloss.Color("#E3B341"),
		ErrorFg:    lipgloss.Color("#F47067"),
		MenuBg:     lipgloss.Color("#161B22"),
		MenuFg:     lipgloss.Color("#E6EDF3"),
		PinBg:      lipgloss.Color("#1F6FEB"),
		DeleteBg:   lipgloss.Color("#DA3633"),
		DisabledFg: lipgloss.Color("#30363D"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#ECEFF4"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		WarnFg:     lipgloss.Color("#EBCB8B"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		MenuBg:     lipgloss.Color("#272C36"),
		MenuFg:     lipgloss.Color("#ECEFF4"),
		PinBg:      lipgloss.Color("#5E81AC"),
		DeleteBg:   lipgloss.Color("#BF616A"),
		DisabledFg: lipgloss.Color("#434C5E"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
		AccentDim:  lipgloss.Color("#3C3836"),
		Border:     lipgloss.Color("#504945"),
		MutedFg:    lipgloss.Color("#A89984"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		SuccessFg:  lipgloss.Color("#B8BB26"),
		WarnFg:     lipgloss.Color("#FE8019"),
		ErrorFg:    lipgloss.Color("#FB4934"),
		MenuBg:     lipgloss.Color("#1D2021"),
		MenuFg:     lipgloss.Color("#FBF1C7"),
		PinBg:      lipgloss.Color("#458588"),
		DeleteBg:   lipgloss.Color("#CC241D"),
		DisabledFg: lipgloss.Color("#504945"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#268BD2"),
		AccentFg:   lipgloss.Color("#FDF6E3"),
		AccentDim:  lipgloss.Color("#EEE8D5"),
		Border:     lipgloss.Color("#93A1A1"),
		MutedFg:    lipgloss.Color("#93A1A1"),
		TextFg:     lipgloss.Color("#586E75"),
		SuccessFg:  lipgloss.Color("#859900"),
		WarnFg:     lipgloss.Color("#CB4B16"),
		ErrorFg:    lipgloss.Color("#DC322F"),
		MenuBg:     lipgloss.Color("#EEE8D5"),
		MenuFg:     lipgloss.Color("#FDF6E3"),
		PinBg:      lipgloss.Color("#2AA198"),
		DeleteBg:   lipgloss.Color("#DC322F"),
		DisabledFg: lipgloss.Color("#93A1A1"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NarnaName:
		return Narna()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case SolarizedLightName:
		return SolarizedLight()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, SolarizedLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return DraculaLightName
}

// AvailableThemes returns the supported theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NarnaName,
		NordName,
		GruvboxDarkName,
		SolarizedLightName,
	}
}
