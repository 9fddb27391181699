// Package audio downloads pronunciation clips and plays them through an
// external player program.
//
// Decoding audio is left to the platform: a clip is fetched to a temporary
// file and handed to a command such as ffplay, mpv or afplay.
package audio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path"
	"sync"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/Mr-Dark-debug/glossa/internal/logger"
)

//go:generate mockgen -source=player.go -destination=../mocks/audio/mock_player.go -package=mock_audio

// ErrClosed is returned by Play after the clip was released.
var ErrClosed = errors.New("audio clip closed")

// Clip is a loaded pronunciation that can be played until it is closed.
type Clip interface {
	// Play blocks until playback finishes, ctx is done or the clip is
	// closed.
	Play(ctx context.Context) error
	// Close stops playback and releases the clip. It is safe to call more
	// than once.
	Close() error
}

// Loader acquires clips.
type Loader interface {
	Load(ctx context.Context, url string) (Clip, error)
}

// CommandPlayer loads clips over HTTP and plays them with an external
// command. The clip path is appended to Args.
type CommandPlayer struct {
	httpClient *resty.Client
	command    string
	args       []string
	log        zerolog.Logger
}

var _ Loader = (*CommandPlayer)(nil)

func NewCommandPlayer(command string, args ...string) *CommandPlayer {
	return &CommandPlayer{
		httpClient: resty.New(),
		command:    command,
		args:       args,
		log:        logger.New("audio"),
	}
}

func (p *CommandPlayer) Close() error {
	return p.httpClient.Close()
}

// Available reports whether the player command can be found.
func (p *CommandPlayer) Available() bool {
	_, err := exec.LookPath(p.command)
	return err == nil
}

// Load downloads url into a temporary file.
func (p *CommandPlayer) Load(ctx context.Context, url string) (Clip, error) {
	if url == "" {
		return nil, errors.New("audio: empty url")
	}

	response, err := p.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("audio: download: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("audio: download: unexpected status %d", response.StatusCode())
	}

	f, err := os.CreateTemp("", "glossa-*"+path.Ext(url))
	if err != nil {
		return nil, fmt.Errorf("audio: create temp file: %w", err)
	}
	if _, err := f.Write(response.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("audio: write clip: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("audio: write clip: %w", err)
	}

	p.log.Debug().Str("url", url).Str("file", f.Name()).Msg("clip loaded")

	return &fileClip{
		path:    f.Name(),
		command: p.command,
		args:    p.args,
		log:     p.log,
	}, nil
}

// fileClip is a downloaded clip on disk.
type fileClip struct {
	path    string
	command string
	args    []string
	log     zerolog.Logger

	mu      sync.Mutex
	closed  bool
	cancels map[int]context.CancelFunc
	nextID  int
}

func (c *fileClip) Play(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	if c.cancels == nil {
		c.cancels = make(map[int]context.CancelFunc)
	}
	id := c.nextID
	c.nextID++
	c.cancels[id] = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.cancels, id)
		c.mu.Unlock()
		cancel()
	}()

	args := append(append([]string{}, c.args...), c.path)
	cmd := exec.CommandContext(ctx, c.command, args...)
	if err := cmd.Run(); err != nil {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return ErrClosed
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("audio: %s: %w", c.command, err)
	}
	return nil
}

func (c *fileClip) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for _, cancel := range c.cancels {
		cancel()
	}
	c.mu.Unlock()

	c.log.Debug().Str("file", c.path).Msg("clip released")
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("audio: remove clip: %w", err)
	}
	return nil
}
