package components

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtrevizo/tablero/internal/models"
)

// DetailProps carries the project shown in the detail overlay.
type DetailProps struct {
	Project models.Project
	Width   int
}

// Glamour renderers are cached by width because creating one is expensive.
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

// RenderDetail renders the full project view: title, status, people count,
// and the description as markdown.
func RenderDetail(props DetailProps) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	header := titleStyle.Render(props.Project.Title)

	meta := subtleStyle.Render(fmt.Sprintf(
		"%s · %s",
		props.Project.Status.Display(),
		peopleLabel(props.Project.PeopleCount),
	))

	description := renderMarkdown(props.Project.Description, props.Width)

	return header + "\n" + meta + "\n" + description
}

func renderMarkdown(markdown string, width int) string {
	if markdown == "" {
		return "\n" + subtleStyle.Italic(true).Render("no description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return "\n" + markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "\n" + markdown
	}
	return rendered
}
