package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mr-Dark-debug/glossa/internal/audio"
	"github.com/Mr-Dark-debug/glossa/internal/config"
	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/internal/lookup"
	"github.com/Mr-Dark-debug/glossa/internal/session"
)

// Run starts the full-screen lookup screen configured by cfg and blocks
// until the user quits. Any loaded audio clip is released on return.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.New("tui")

	client := lookup.NewClient(cfg.API.BaseURL)
	defer func() { _ = client.Close() }()

	opts := []Option{
		WithContext(ctx),
		WithSessionOptions(session.Options{AudioFallback: cfg.Audio.Fallback}),
	}

	player := audio.NewCommandPlayer(cfg.Audio.Player, cfg.Audio.Args...)
	defer func() { _ = player.Close() }()
	if player.Available() {
		opts = append(opts, WithPlayer(player))
	} else {
		log.Warn().Str("player", cfg.Audio.Player).Msg("audio player not found, pronunciation disabled")
	}

	p := tea.NewProgram(NewModel(client, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		if cerr := m.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("release audio")
		}
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
