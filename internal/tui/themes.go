package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI. The active theme lives on
// the model and is passed where needed; nothing reads it from a global.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Faint   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var themes = []Theme{
	{
		Name:    "slate",
		Primary: lipgloss.Color("86"),
		Accent:  lipgloss.Color("213"),
		Text:    lipgloss.Color("255"),
		Muted:   lipgloss.Color("245"),
		Faint:   lipgloss.Color("238"),
		Success: lipgloss.Color("82"),
		Error:   lipgloss.Color("203"),
	},
	{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#00aa00"),
		Faint:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ffff00"),
	},
	{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Faint:   lipgloss.Color("#444444"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff4444"),
	},
	{
		Name:    "ocean",
		Primary: lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Faint:   lipgloss.Color("#225577"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	},
}

// GetTheme returns the named theme, falling back to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme cycles to the theme after the given one.
func NextTheme(cur Theme) Theme {
	for i, t := range themes {
		if t.Name == cur.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// ThemeNames lists available theme names.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	title  lipgloss.Style
	item   lipgloss.Style
	sel    lipgloss.Style
	dim    lipgloss.Style
	faint  lipgloss.Style
	accent lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		item:   lipgloss.NewStyle().Foreground(t.Text),
		sel:    lipgloss.NewStyle().Foreground(t.Primary),
		dim:    lipgloss.NewStyle().Foreground(t.Muted),
		faint:  lipgloss.NewStyle().Foreground(t.Faint),
		accent: lipgloss.NewStyle().Foreground(t.Accent),
		good:   lipgloss.NewStyle().Foreground(t.Success),
		bad:    lipgloss.NewStyle().Foreground(t.Error),
	}
}
