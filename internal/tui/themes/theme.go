package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI and the text report.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	MetricCard    lipgloss.Style
	MetricLabel   lipgloss.Style
	MetricValue   lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	CategoryHigh  lipgloss.Style
	CategoryMed   lipgloss.Style
	CategoryLow   lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	BarLight      lipgloss.Color
	BarDark       lipgloss.Color
	BarEmpty      lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	primary, secondary, barLight, barDark, barEmpty lipgloss.Color
	success, warning, errorC, info                  lipgloss.Color
	background, foreground, subtle, border, muted   lipgloss.Color
	surface                                         lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		BarLight:   p.barLight,
		BarDark:    p.barDark,
		BarEmpty:   p.barEmpty,
		Success:    p.success,
		Warning:    p.warning,
		Error:      p.errorC,
		Info:       p.info,
		Background: p.background,
		Foreground: p.foreground,
		Border:     p.border,
		Muted:      p.muted,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.foreground),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.background).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(p.border).
			Foreground(p.foreground),

		// Component styles
		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		MetricCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2),
		MetricLabel: lipgloss.NewStyle().
			Foreground(p.subtle),
		MetricValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.background).
			Background(p.primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Background(p.surface).
			Padding(0, 1),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorC).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),

		// Weather category bands
		CategoryHigh: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		CategoryMed: lipgloss.NewStyle().
			Foreground(p.warning),
		CategoryLow: lipgloss.NewStyle().
			Foreground(p.errorC),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#7c3aed"),
	secondary:  lipgloss.Color("#a78bfa"),
	barLight:   lipgloss.Color("#93c5fd"),
	barDark:    lipgloss.Color("#1d4ed8"),
	barEmpty:   lipgloss.Color("#262626"),
	success:    lipgloss.Color("#10b981"),
	warning:    lipgloss.Color("#f59e0b"),
	errorC:     lipgloss.Color("#ef4444"),
	info:       lipgloss.Color("#3b82f6"),
	background: lipgloss.Color("#1a1a1a"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	border:     lipgloss.Color("#404040"),
	muted:      lipgloss.Color("#737373"),
	surface:    lipgloss.Color("#262626"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#cba6f7"),
	secondary:  lipgloss.Color("#f5c2e7"),
	barLight:   lipgloss.Color("#89b4fa"),
	barDark:    lipgloss.Color("#1e66f5"),
	barEmpty:   lipgloss.Color("#313244"),
	success:    lipgloss.Color("#a6e3a1"),
	warning:    lipgloss.Color("#f9e2af"),
	errorC:     lipgloss.Color("#f38ba8"),
	info:       lipgloss.Color("#89dceb"),
	background: lipgloss.Color("#1e1e2e"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	border:     lipgloss.Color("#45475a"),
	muted:      lipgloss.Color("#6c7086"),
	surface:    lipgloss.Color("#313244"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryStyle returns the style for a weather category label.
func (t Theme) CategoryStyle(category string) lipgloss.Style {
	switch category {
	case "High":
		return t.CategoryHigh
	case "Medium":
		return t.CategoryMed
	default:
		return t.CategoryLow
	}
}
