package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/glossa/internal/audio"
	"github.com/Mr-Dark-debug/glossa/internal/config"
	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/internal/lookup"
	"github.com/Mr-Dark-debug/glossa/internal/render"
	"github.com/Mr-Dark-debug/glossa/internal/session"
)

func newLookupCommand(opts *globalOptions) *cobra.Command {
	format := render.FormatText
	var noColor, play bool

	command := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the definitions of a word",
		Long: "Look up a word and print every definition with its part of speech,\n" +
			"example, synonyms and antonyms. Multiple arguments form one phrase.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := logger.Setup(cmd.ErrOrStderr(), cfg.Log.Level); err != nil {
				return err
			}

			view, err := lookupView(cmd.Context(), cfg, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := render.Write(cmd.OutOrStdout(), format, view); err != nil {
				return fmt.Errorf("render.Write > %w", err)
			}

			if play {
				return playView(cmd.Context(), cfg, view)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.VarP(&format, "format", "f", fmt.Sprintf("output format. Possible values are %v", render.AllFormats))
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&play, "play", "p", false, "play the pronunciation after printing")
	return command
}

// lookupView runs one lookup through the screen state machine so the
// command reports the same messages as the interactive screen.
func lookupView(ctx context.Context, cfg *config.Config, word string) (session.View, error) {
	state, ok := session.Submit(session.Idle{}, word)
	if !ok {
		return session.View{}, lookup.ErrEmptyWord
	}

	client := lookup.NewClient(cfg.API.BaseURL)
	defer func() { _ = client.Close() }()

	results, err := client.Lookup(ctx, session.Word(state))
	if err != nil {
		errored, _ := session.Reject(state, session.Word(state), err).(session.Errored)
		return session.View{}, fmt.Errorf("%s: %w", errored.Message, err)
	}

	loaded, _ := session.Resolve(state, session.Word(state), results,
		session.Options{AudioFallback: cfg.Audio.Fallback}).(session.Loaded)
	return loaded.View, nil
}

func playView(ctx context.Context, cfg *config.Config, view session.View) error {
	if !view.HasAudio() {
		return errors.New("no pronunciation audio for this word")
	}

	player := audio.NewCommandPlayer(cfg.Audio.Player, cfg.Audio.Args...)
	defer func() { _ = player.Close() }()
	if !player.Available() {
		return fmt.Errorf("audio player %q not found", cfg.Audio.Player)
	}

	clip, err := player.Load(ctx, view.AudioURL)
	if err != nil {
		return err
	}
	defer func() { _ = clip.Close() }()

	if err := clip.Play(ctx); err != nil {
		return fmt.Errorf("play pronunciation: %w", err)
	}
	return nil
}
