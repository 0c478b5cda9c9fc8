package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ksaito/pmdash/internal/domain"
)

// Palette is a color scheme for the dashboard.
type Palette struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border    lipgloss.Color
	Selection lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color
}

// Dark is the palette for the dark theme.
var Dark = Palette{
	Name: "dark",

	Foreground:    lipgloss.Color("#DFE6E9"),
	ForegroundDim: lipgloss.Color("#636E72"),

	Primary: lipgloss.Color("#6C5CE7"),
	Accent:  lipgloss.Color("#A29BFE"),

	Success: lipgloss.Color("#00B894"),
	Warning: lipgloss.Color("#FDCB6E"),
	Error:   lipgloss.Color("#D63031"),

	Border:    lipgloss.Color("#3B4261"),
	Selection: lipgloss.Color("#FFEAA7"),

	Todo:       lipgloss.Color("#74B9FF"),
	InProgress: lipgloss.Color("#FDCB6E"),
	Completed:  lipgloss.Color("#00B894"),
}

// Light is the palette for the light theme.
var Light = Palette{
	Name: "light",

	Foreground:    lipgloss.Color("#2D3436"),
	ForegroundDim: lipgloss.Color("#95A5A6"),

	Primary: lipgloss.Color("#5541D7"),
	Accent:  lipgloss.Color("#6C5CE7"),

	Success: lipgloss.Color("#00875F"),
	Warning: lipgloss.Color("#B7791F"),
	Error:   lipgloss.Color("#C0392B"),

	Border:    lipgloss.Color("#B2BEC3"),
	Selection: lipgloss.Color("#0984E3"),

	Todo:       lipgloss.Color("#0984E3"),
	InProgress: lipgloss.Color("#B7791F"),
	Completed:  lipgloss.Color("#00875F"),
}

// PaletteFor maps a persisted theme to its palette.
func PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeDark {
		return Dark
	}
	return Light
}

// Styles contains all the lipgloss styles for the dashboard.
type Styles struct {
	App lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Card      lipgloss.Style
	CardValue lipgloss.Style
	CardLabel lipgloss.Style

	SectionTitle lipgloss.Style

	ItemNormal   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDone     lipgloss.Style
	ItemDim      lipgloss.Style

	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style

	Bar      lipgloss.Style
	BarLabel lipgloss.Style

	Flash      lipgloss.Style
	FlashError lipgloss.Style

	Help lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.ForegroundDim).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2).
			MarginRight(1),
		CardValue: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		CardLabel: lipgloss.NewStyle().Foreground(p.ForegroundDim),

		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginTop(1),

		ItemNormal:   lipgloss.NewStyle().Foreground(p.Foreground),
		ItemSelected: lipgloss.NewStyle().Bold(true).Foreground(p.Selection),
		ItemDone:     lipgloss.NewStyle().Strikethrough(true).Foreground(p.ForegroundDim),
		ItemDim:      lipgloss.NewStyle().Foreground(p.ForegroundDim),

		StatusTodo:       lipgloss.NewStyle().Foreground(p.Todo),
		StatusInProgress: lipgloss.NewStyle().Foreground(p.InProgress),
		StatusCompleted:  lipgloss.NewStyle().Foreground(p.Completed),

		Bar:      lipgloss.NewStyle().Foreground(p.Primary),
		BarLabel: lipgloss.NewStyle().Foreground(p.ForegroundDim),

		Flash:      lipgloss.NewStyle().Foreground(p.Success),
		FlashError: lipgloss.NewStyle().Foreground(p.Error),

		Help: lipgloss.NewStyle().Foreground(p.ForegroundDim).MarginTop(1),
	}
}

// statusStyle returns the style for a task status.
func (s Styles) statusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.StatusTodo
	}
}
