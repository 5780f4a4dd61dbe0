// Package styles holds the lipgloss styles shared by the menu and the CLI
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/phonebook/internal/config/colors"
	"github.com/thenoetrevino/phonebook/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 48

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // Contact names, field labels
	ValueStyle    lipgloss.Style // Phones, ids, counts

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Warning))
}

// RenderContact renders one contact as "name  phone"
func RenderContact(c models.Contact) string {
	return LabelStyle.Render(c.Name) + "  " + ValueStyle.Render(c.Phone)
}

// RenderContacts renders contacts one per line
func RenderContacts(contacts []models.Contact) string {
	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		lines = append(lines, RenderContact(c))
	}
	return strings.Join(lines, "\n")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
