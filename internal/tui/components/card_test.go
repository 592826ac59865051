package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mtrevizo/tablero/internal/models"
)

// TestRenderCardTruncatesTitleOnRunes checks that long multi-byte titles
// are cut on rune boundaries, never mid-character.
func TestRenderCardTruncatesTitleOnRunes(t *testing.T) {
	t.Parallel()

	p := models.Project{
		Title:       strings.Repeat("é", cardWidth),
		PeopleCount: 2,
		Status:      models.StatusActive,
	}

	out := RenderCard(p, false, false)

	if !utf8.ValidString(out) {
		t.Fatal("rendered card contains invalid UTF-8")
	}
	if strings.ContainsRune(out, utf8.RuneError) {
		t.Error("truncation split a multi-byte rune")
	}
	if !strings.Contains(out, "...") {
		t.Error("long title should be truncated with an ellipsis")
	}
	if !strings.Contains(out, strings.Repeat("é", cardWidth-7)) {
		t.Errorf("truncated title should keep the first %d runes intact", cardWidth-7)
	}
}

func TestRenderCardKeepsShortTitle(t *testing.T) {
	t.Parallel()

	out := RenderCard(models.Project{Title: "Build API", PeopleCount: 1}, false, false)

	if !strings.Contains(out, "Build API") {
		t.Error("short title should render unmodified")
	}
	if strings.Contains(out, "...") {
		t.Error("short title must not be truncated")
	}
}

func TestPeopleLabel(t *testing.T) {
	t.Parallel()

	if got := peopleLabel(1); got != "1 person assigned" {
		t.Errorf("peopleLabel(1) = %q, want %q", got, "1 person assigned")
	}
	if got := peopleLabel(3); got != "3 people assigned" {
		t.Errorf("peopleLabel(3) = %q, want %q", got, "3 people assigned")
	}
}
