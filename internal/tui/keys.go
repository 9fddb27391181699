package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the screen reacts to. Bindings that are
// plain letters only apply while the results have focus, so they can be
// typed into the search box.
type keyMap struct {
	Submit   key.Binding
	Clear    key.Binding
	Focus    key.Binding
	Search   key.Binding
	Play     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Synonyms key.Binding
	Antonyms key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "ctrl+l"),
			key.WithHelp("esc", "clear"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Play: key.NewBinding(
			key.WithKeys("ctrl+p", "p"),
			key.WithHelp("ctrl+p", "play"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓←→", "navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Synonyms: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "synonyms"),
		),
		Antonyms: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "antonyms"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQ: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// hintsFor returns the footer hints for the current focus and state.
func hintsFor(k keyMap, searchFocused, loaded, hasAudio bool) []key.Binding {
	if searchFocused {
		hints := []key.Binding{k.Submit}
		if loaded {
			hints = append(hints, k.Focus)
		}
		if hasAudio {
			hints = append(hints, k.Play)
		}
		return append(hints, k.Clear, k.ForceQ)
	}

	hints := []key.Binding{k.Up, k.Synonyms, k.Antonyms}
	if hasAudio {
		hints = append(hints, k.Play)
	}
	return append(hints, k.Search, k.Clear, k.Quit)
}
