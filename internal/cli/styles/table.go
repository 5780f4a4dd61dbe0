package styles

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Glamour renderers are expensive to build, so they are cached by width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// ContactTableMarkdown builds a markdown table of contacts
func ContactTableMarkdown(contacts []models.Contact) string {
	var b strings.Builder
	b.WriteString("| Name | Phone |\n| --- | --- |\n")
	for _, c := range contacts {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(c.Name), escapeCell(c.Phone))
	}
	return b.String()
}

// RenderContactTable renders contacts as a terminal table. It falls back to
// plain lines when the markdown renderer is unavailable.
func RenderContactTable(contacts []models.Contact, width int) string {
	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(ContactTableMarkdown(contacts))
		if err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return RenderContacts(contacts)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
