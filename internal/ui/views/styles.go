package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Padding of the main container, used to map mouse coordinates
const (
	PadTop  = 1
	PadLeft = 2
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusStopped lipgloss.Style
	TrackFilled   lipgloss.Style
	TrackEmpty    lipgloss.Style
	Thumb         lipgloss.Style
	Landing       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(PadTop, PadLeft),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusStopped: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		TrackFilled:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		TrackEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Landing: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 3),
	}
}
