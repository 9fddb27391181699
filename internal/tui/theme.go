package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette (GitHub Dark)
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerAudioStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	headerAudioPlayingStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)
)

// Search bar
var (
	searchBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1).
			Border(lipgloss.Border{Bottom: "─"}).
			BorderForeground(colorDivider)

	searchBarActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Padding(0, 1).
				Border(lipgloss.Border{Bottom: "─"}).
				BorderForeground(colorBlue)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	searchPlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)
)

// Cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorHighlight).
				Padding(0, 1)

	cardPosStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	cardIndexStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	cardDefinitionStyle = lipgloss.NewStyle().
				Foreground(colorText)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	cardExampleStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Italic(true)

	disclosureStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	disclosureContentStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				PaddingLeft(2)
)

// Messages
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			Padding(1, 2)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Padding(1, 2)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgSurface).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	cursorStyle = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorBg)
)
