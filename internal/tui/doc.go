// Package tui implements the Glossa terminal user interface.
//
// A single lookup screen built with Charmbracelet's BubbleTea, Lipgloss
// and Bubbles libraries.
//
// Component architecture:
//
//	model.go    root model, message routing, Init/Update/View
//	keys.go     key bindings and footer hints
//	theme.go    centralized color and style definitions
//	header.go   top bar with headword, phonetic and audio marker; footer
//	results.go  card grid with synonym/antonym disclosure sections
//	helpers.go  grid sizing and string helpers
//	program.go  wiring of config, lookup client and player into a program
//
// Screen state lives in package session; the model only keeps UI-local
// concerns (search text, focus, selection, open disclosure sections).
package tui
