// Package lookup queries the Free Dictionary API for a single word.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/Mr-Dark-debug/glossa/internal/config"
	"github.com/Mr-Dark-debug/glossa/internal/dictionary"
	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/pkg/jsonutil"
)

//go:generate mockgen -source=client.go -destination=../mocks/lookup/mock_lookuper.go -package=mock_lookup Lookuper

var (
	// ErrNotFound is reported for any non-200 response and for a 200 that
	// carries no entries.
	ErrNotFound = errors.New("word not found")
	// ErrTransport is reported when the request cannot be completed or
	// the body cannot be decoded.
	ErrTransport = errors.New("transport error")
	// ErrEmptyWord is returned before any request is made.
	ErrEmptyWord = errors.New("empty word")
)

// Error describes a failed lookup. It unwraps to ErrNotFound or
// ErrTransport, and to the underlying cause when there is one.
type Error struct {
	Kind   error
	Word   string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("lookup %q: %v: %v", e.Word, e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("lookup %q: %v (status %d)", e.Word, e.Kind, e.Status)
	default:
		return fmt.Sprintf("lookup %q: %v", e.Word, e.Kind)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Lookuper fetches dictionary entries for a word.
type Lookuper interface {
	Lookup(ctx context.Context, word string) ([]dictionary.LookupResult, error)
}

// Client is a Lookuper backed by the Free Dictionary API.
type Client struct {
	httpClient *resty.Client
	log        zerolog.Logger
}

var _ Lookuper = (*Client)(nil)

// NewClient creates a client for the given entries endpoint, e.g.
// https://api.dictionaryapi.dev/api/v2/entries/en. An empty baseURL
// selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		log:        logger.New("lookup"),
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Lookup issues exactly one GET for word. It never retries.
func (c *Client) Lookup(ctx context.Context, word string) ([]dictionary.LookupResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	start := time.Now()
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		c.log.Debug().Err(err).Str("word", word).Msg("request failed")
		return nil, &Error{Kind: ErrTransport, Word: word, Err: err}
	}

	body := response.String()
	c.log.Debug().
		Str("word", word).
		Int("status", response.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Str("body", jsonutil.Snippet(body, 200)).
		Msg("dictionary response")

	if response.StatusCode() != http.StatusOK {
		return nil, &Error{Kind: ErrNotFound, Word: word, Status: response.StatusCode()}
	}

	var results []dictionary.LookupResult
	if err := json.Unmarshal([]byte(body), &results); err != nil {
		return nil, &Error{Kind: ErrTransport, Word: word, Status: response.StatusCode(), Err: fmt.Errorf("decode body: %w", err)}
	}
	if err := dictionary.Validate(results); err != nil {
		return nil, &Error{Kind: ErrTransport, Word: word, Status: response.StatusCode(), Err: fmt.Errorf("unexpected payload: %w", err)}
	}
	if len(results) == 0 {
		return nil, &Error{Kind: ErrNotFound, Word: word, Status: response.StatusCode()}
	}

	return results, nil
}
