package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer and help panels
	SurfaceAlt string // Card badges without a known accent
	FocusBg    string // Focused field

	SelectionBg   string
	SelectionText string

	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// CategoryColors tint the category tag on each card.
	CategoryColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		categoryColors: t.CategoryColors,
		fallback:       t.SurfaceAlt,
		text:           t.Text,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Section  lipgloss.Style
	Selected lipgloss.Style

	categoryColors map[string]string
	fallback       string
	text           string
}

// BadgeStyle returns the style of a service badge for a Tailwind background
// token such as "bg-orange-500".
func (s Styles) BadgeStyle(token string) lipgloss.Style {
	color, ok := TailwindColor(token)
	if !ok {
		color = s.fallback
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// CategoryStyle returns the style of a card's category tag.
func (s Styles) CategoryStyle(category string) lipgloss.Style {
	color := s.categoryColors[category]
	if color == "" {
		color = s.text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// tailwind maps the Tailwind background tokens used by the service catalog
// to their hex values.
var tailwind = map[string]string{
	"amber-500":   "#f59e0b",
	"blue-500":    "#3b82f6",
	"blue-600":    "#2563eb",
	"blue-700":    "#1d4ed8",
	"blue-800":    "#1e40af",
	"cyan-500":    "#06b6d4",
	"emerald-500": "#10b981",
	"fuchsia-500": "#d946ef",
	"gray-600":    "#4b5563",
	"gray-700":    "#374151",
	"green-600":   "#16a34a",
	"green-700":   "#15803d",
	"indigo-500":  "#6366f1",
	"lime-600":    "#65a30d",
	"orange-500":  "#f97316",
	"orange-600":  "#ea580c",
	"pink-500":    "#ec4899",
	"purple-500":  "#a855f7",
	"red-500":     "#ef4444",
	"red-600":     "#dc2626",
	"red-700":     "#b91c1c",
	"rose-500":    "#f43f5e",
	"sky-500":     "#0ea5e9",
	"stone-500":   "#78716c",
	"teal-500":    "#14b8a6",
	"violet-500":  "#8b5cf6",
	"violet-600":  "#7c3aed",
	"yellow-500":  "#eab308",
	"yellow-600":  "#ca8a04",
}

// TailwindColor resolves a "bg-<family>-<shade>" token to a hex color.
func TailwindColor(token string) (string, bool) {
	hex, ok := tailwind[strings.TrimPrefix(strings.TrimSpace(token), "bg-")]
	return hex, ok
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21",
		Surface:    "#282A36",
		SurfaceAlt: "#44475A",
		FocusBg:    "#343746",

		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",

		Border:      "#44475A",
		BorderMuted: "#21222C",
		BorderFocus: "#BD93F9",

		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Success: "#50FA7B",
		Warning: "#FFB86C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",

		CategoryColors: map[string]string{
			"ai":         "#BD93F9", // Purple
			"automation": "#FFB86C", // Orange
			"database":   "#8BE9FD", // Cyan
			"infra":      "#6272A4", // Comment
			"monitoring": "#FF79C6", // Pink
			"tools":      "#50FA7B", // Green
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Emerald palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#334155", // slate-700
		FocusBg:    "#283548",

		SelectionBg:   "#047857", // emerald-700
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155",
		BorderMuted: "#1e293b",
		BorderFocus: "#3ECF8E",

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#3ECF8E", // brand
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		CategoryColors: map[string]string{
			"ai":         "#a78bfa", // violet-400
			"automation": "#fb923c", // orange-400
			"database":   "#38bdf8", // sky-400
			"infra":      "#94a3b8", // slate-400
			"monitoring": "#f472b6", // pink-400
			"tools":      "#34d399", // emerald-400
		},
	}
}
