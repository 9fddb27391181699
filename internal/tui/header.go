package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	GLOSSA  |  hello  |  /həˈloʊ/  |  ♪ audio
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("GLOSSA")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)

	view := m.view()
	if view.Headword != "" {
		parts = append(parts, sep)
		parts = append(parts, headerWordStyle.Render(view.Headword))

		if view.Phonetic != "" {
			parts = append(parts, sep)
			parts = append(parts, headerMetaStyle.Render(view.Phonetic))
		}

		if view.HasAudio() && m.player != nil {
			parts = append(parts, sep)
			if m.playing {
				parts = append(parts, headerAudioPlayingStyle.Render("♪ playing"))
			} else {
				parts = append(parts, headerAudioStyle.Render("♪ audio"))
			}
		}
	} else {
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render("Dictionary"))
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderSearch draws the search box under the header.
func renderSearch(m *Model) string {
	style := searchBarStyle
	if m.focus == FocusSearch {
		style = searchBarActiveStyle
	}
	return style.Width(m.width).Render(m.input.View())
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		if m.statusErr {
			left = statusErrorStyle.Render(m.statusMsg)
		} else {
			left = statusStyle.Render(m.statusMsg)
		}
	}

	view := m.view()
	right := renderHints(hintsFor(m.keys,
		m.focus == FocusSearch,
		len(view.Rows) > 0,
		view.HasAudio() && m.player != nil,
	))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		MaxHeight(1).
		Render(bar)
}

func renderHints(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			hintKeyStyle.Render(h.Key)+" "+hintDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
