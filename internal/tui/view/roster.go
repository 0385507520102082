package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
	"github.com/Iron-Ham/teambuilder/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultCardWidth is the card width used when none is configured.
	DefaultCardWidth = 24

	// CardsPerRow is how many cards share a row when the terminal is wide enough.
	CardsPerRow = 3

	// cardHeight is the inner height of every card, filled or empty, so rows line up.
	cardHeight = 4

	// cardChrome is the horizontal space a card adds around its content:
	// two border columns, two padding columns and the right margin.
	cardChrome = 5
)

// RosterState holds the state needed to render the roster grid.
type RosterState struct {
	// Slots is the render of the roster; always roster.MaxSize entries.
	Slots []roster.Slot

	// Selected is the index of the highlighted slot, or -1 for none.
	Selected int

	// Focused indicates the roster (not the name input) has keyboard focus.
	// The selection highlight is only drawn while focused.
	Focused bool

	// ShowSpriteURL adds the sprite URL line to filled cards.
	ShowSpriteURL bool
}

// RosterView renders roster slots as lipgloss cards.
type RosterView struct {
	cardWidth int
}

// NewRosterView creates a RosterView with the given card content width.
// Widths below one are replaced by DefaultCardWidth.
func NewRosterView(cardWidth int) *RosterView {
	if cardWidth < 1 {
		cardWidth = DefaultCardWidth
	}
	return &RosterView{cardWidth: cardWidth}
}

// CardWidth returns the content width of a single card.
func (v *RosterView) CardWidth() int {
	return v.cardWidth
}

// Columns returns how many cards fit side by side in width columns,
// capped at CardsPerRow and never below one.
func (v *RosterView) Columns(width int) int {
	if width <= 0 {
		return CardsPerRow
	}
	cols := width / (v.cardWidth + cardChrome)
	return max(1, min(cols, CardsPerRow))
}

// Render renders the header line and the slot grid for the given width.
func (v *RosterView) Render(state RosterState, width int) string {
	var b strings.Builder

	filled := roster.FilledCount(state.Slots)
	b.WriteString(styles.Title.Render(fmt.Sprintf("Your Team (%d/%d)", filled, roster.MaxSize)))
	b.WriteString("\n")

	cols := v.Columns(width)
	var rows []string
	for start := 0; start < len(state.Slots); start += cols {
		end := min(start+cols, len(state.Slots))
		cards := make([]string, 0, end-start)
		for _, slot := range state.Slots[start:end] {
			selected := state.Focused && slot.Filled && slot.Index == state.Selected
			cards = append(cards, v.RenderCard(slot, selected, state.ShowSpriteURL))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return b.String()
}

// RenderCard renders one slot. Empty slots show a dimmed placeholder.
func (v *RosterView) RenderCard(slot roster.Slot, selected, showSpriteURL bool) string {
	if !slot.Filled {
		return styles.EmptyCard.
			Width(v.cardWidth + 2).
			Height(cardHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Empty Slot")
	}

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}

	lines := []string{
		v.renderTitle(slot),
		v.renderBadges(slot.Badges),
	}
	if showSpriteURL {
		sprite := slot.Creature.SpriteURL
		if sprite == "" {
			sprite = "(no sprite)"
		}
		lines = append(lines, styles.Muted.Render(util.Truncate(sprite, v.cardWidth)))
	}

	return style.
		Width(v.cardWidth + 2).
		Height(cardHeight).
		Render(strings.Join(lines, "\n"))
}

// renderTitle puts the display name on the left and the remove tag on the right.
func (v *RosterView) renderTitle(slot roster.Slot) string {
	tag := styles.RemoveTag.Render(fmt.Sprintf("[%d]", slot.Index+1))
	nameWidth := v.cardWidth - lipgloss.Width(tag) - 1
	name := styles.CardName.Render(util.Truncate(util.DisplayName(slot.Creature.Name), nameWidth))

	gap := max(1, v.cardWidth-lipgloss.Width(name)-lipgloss.Width(tag))
	return name + strings.Repeat(" ", gap) + tag
}

func (v *RosterView) renderBadges(badges []roster.Badge) string {
	if len(badges) == 0 {
		return styles.Muted.Render("no types")
	}
	parts := make([]string, 0, len(badges))
	for _, badge := range badges {
		parts = append(parts, styles.TypeBadge(badge.Color).Render(badge.Label))
	}
	return util.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, parts...), v.cardWidth)
}
