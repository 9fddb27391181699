package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/glossa/internal/dictionary"
	"github.com/Mr-Dark-debug/glossa/internal/render"
	"github.com/Mr-Dark-debug/glossa/internal/session"
)

// renderResults lays the rows out as a grid of cards and scrolls the grid
// so the selected card is visible.
func renderResults(m *Model, view session.View, width, height int) string {
	if len(view.Rows) == 0 {
		return emptyStateStyle.Render("No definitions.")
	}

	cols := columnsFor(width)
	cw := cardWidth(width, cols)

	var blocks []string
	var starts []int
	line := 0

	for i := 0; i < len(view.Rows); i += cols {
		end := minInt(i+cols, len(view.Rows))

		var cards []string
		for j := i; j < end; j++ {
			if j > i {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(m, j, view.Rows[j], cw))
		}

		block := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		starts = append(starts, line)
		line += lipgloss.Height(block)
		blocks = append(blocks, block)
	}

	if len(view.SourceURLs) > 0 {
		blocks = append(blocks, sourceStyle.Render(
			truncate("Source: "+strings.Join(view.SourceURLs, ", "), width)))
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")

	// Visible window
	gridRow := m.selected / cols
	offset := 0
	if gridRow < len(starts) {
		blockEnd := line
		if gridRow+1 < len(starts) {
			blockEnd = starts[gridRow+1]
		}
		if blockEnd > height {
			offset = minInt(blockEnd-height, starts[gridRow])
		}
	}
	endIdx := minInt(offset+height, len(lines))

	return strings.Join(lines[offset:endIdx], "\n")
}

// renderCard draws one definition card.
func renderCard(m *Model, idx int, row dictionary.Row, width int) string {
	style := cardStyle
	if m.focus == FocusResults && idx == m.selected {
		style = cardSelectedStyle
	}

	var lines []string

	heading := cardIndexStyle.Render(fmt.Sprintf("%d ", idx+1))
	if row.PartOfSpeech != "" {
		heading += cardPosStyle.Render(render.Title(row.PartOfSpeech))
	}
	lines = append(lines, heading)

	lines = append(lines, cardLabelStyle.Render("Definition: ")+cardDefinitionStyle.Render(row.Definition))

	if row.Example != nil {
		lines = append(lines, cardLabelStyle.Render("Example: ")+cardExampleStyle.Render(*row.Example))
	}

	if row.Synonyms != nil {
		lines = append(lines, renderDisclosure("Synonyms", row.Synonyms,
			m.open[disclosureKey{row: idx, kind: disclosureSynonyms}]))
	}
	if row.Antonyms != nil {
		lines = append(lines, renderDisclosure("Antonyms", row.Antonyms,
			m.open[disclosureKey{row: idx, kind: disclosureAntonyms}]))
	}

	// Width excludes the border.
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderDisclosure draws a collapsible section: a chevron heading, and the
// words joined by commas when open.
func renderDisclosure(title string, words []string, open bool) string {
	if !open {
		return disclosureStyle.Render(fmt.Sprintf("▸ %s (%d)", title, len(words)))
	}
	return disclosureStyle.Render("▾ "+title) + "\n" +
		disclosureContentStyle.Render(strings.Join(words, ", "))
}
