package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/activitylist/activitylist/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for screen titles.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// TitleStyle renders the title line of a list row.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	PaddingLeft(1)

// SubtitleStyle renders the secondary line of a list row.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	PaddingLeft(1)

// RowStyle frames a single list row.
var RowStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBorder)

// NoticeStyle is used when a screen cannot be shown.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Italic(true)

// StatusBarStyle is the bottom bar with key hints.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Background(ColorBorder).
	Padding(0, 1)

// ListItemStyle is an unselected line in a list screen.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle is the selected line in a list screen.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue).
	Foreground(ColorWhite).
	Bold(true)

// PanelStyle frames overlays such as the help screen and forms.
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(1, 2)

// HelpStyle is used for hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ActivityStyle returns the accent style for an activity type's icon.
func ActivityStyle(kind model.ActivityType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch kind {
	case model.ActivityGame, model.ActivityShop:
		return base.Foreground(ColorMagenta)
	case model.ActivityGym, model.ActivityFight:
		return base.Foreground(ColorRed)
	case model.ActivityAirplane, model.ActivitySwimming, model.ActivitySkiing:
		return base.Foreground(ColorBlue)
	case model.ActivityBaseball, model.ActivityAmericanFootball:
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}

// AccentStyle is the icon style for rows without an activity type.
var AccentStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// Row renders a list row with an icon glyph, a title and a subtitle.
func Row(glyph string, accent lipgloss.Style, title, subtitle string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		SubtitleStyle.Render(subtitle),
	)
	return RowStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		accent.Render(glyph),
		body,
	))
}
