// Package session holds the state of the lookup screen.
//
// A State is one of Idle, Loading, Loaded or Errored. Each variant carries
// only the fields that are meaningful for it, so a screen can never show
// results and an error at the same time. Transitions are pure functions
// returning a new State.
package session

import (
	"errors"
	"strings"

	"github.com/Mr-Dark-debug/glossa/internal/dictionary"
	"github.com/Mr-Dark-debug/glossa/internal/lookup"
)

// Status names the variant of a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// User-facing messages for failed lookups.
const (
	MessageNotFound  = "Word not found in the database"
	MessageTransport = "An error occurred while fetching data"
)

// State is implemented by Idle, Loading, Loaded and Errored only.
type State interface {
	Status() Status
	isState()
}

// Idle: nothing searched yet, or the screen was cleared.
type Idle struct{}

// Loading: a request for Word is in flight.
type Loading struct {
	Word string
}

// Loaded: the lookup for Word succeeded.
type Loaded struct {
	Word string
	View View
}

// Errored: the lookup for Word failed.
type Errored struct {
	Word    string
	Message string
	// NotFound distinguishes a missing word from a transport failure.
	NotFound bool
}

func (Idle) Status() Status    { return StatusIdle }
func (Loading) Status() Status { return StatusLoading }
func (Loaded) Status() Status  { return StatusLoaded }
func (Errored) Status() Status { return StatusErrored }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Loaded) isState()  {}
func (Errored) isState() {}

// View is everything the screen renders for a successful lookup.
type View struct {
	Headword   string
	Phonetic   string
	AudioURL   string
	Rows       []dictionary.Row
	SourceURLs []string
}

// HasAudio reports whether a pronunciation clip can be played.
func (v View) HasAudio() bool {
	return v.AudioURL != ""
}

// Options tune how a View is built from lookup results.
type Options struct {
	// AudioFallback uses the first clip found in any phonetic when the
	// first phonetic of the first entry has none.
	AudioFallback bool
}

// NewView computes a View from lookup results.
func NewView(results []dictionary.LookupResult, opts Options) View {
	audio := dictionary.AudioURL(results)
	if audio == "" && opts.AudioFallback {
		audio = dictionary.FirstAudioURL(results)
	}
	return View{
		Headword:   dictionary.Headword(results),
		Phonetic:   dictionary.PhoneticText(results),
		AudioURL:   audio,
		Rows:       dictionary.Flatten(results),
		SourceURLs: dictionary.SourceURLs(results),
	}
}

// Submit starts a lookup for word from any state. A blank word leaves the
// state unchanged and reports false.
func Submit(s State, word string) (State, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return s, false
	}
	return Loading{Word: word}, true
}

// Resolve applies a successful lookup. Results are applied whenever they
// arrive; an earlier request finishing late replaces a newer result. A
// result arriving in Idle belongs to a cleared search and is dropped.
func Resolve(s State, word string, results []dictionary.LookupResult, opts Options) State {
	if _, idle := s.(Idle); idle {
		return s
	}
	return Loaded{Word: word, View: NewView(results, opts)}
}

// Reject applies a failed lookup. Like Resolve, it leaves Idle alone.
func Reject(s State, word string, err error) State {
	if _, idle := s.(Idle); idle {
		return s
	}
	if errors.Is(err, lookup.ErrNotFound) {
		return Errored{Word: word, Message: MessageNotFound, NotFound: true}
	}
	return Errored{Word: word, Message: MessageTransport}
}

// Clear returns the screen to Idle.
func Clear(State) State {
	return Idle{}
}

// Word returns the word associated with s, if any.
func Word(s State) string {
	switch st := s.(type) {
	case Loading:
		return st.Word
	case Loaded:
		return st.Word
	case Errored:
		return st.Word
	default:
		return ""
	}
}
