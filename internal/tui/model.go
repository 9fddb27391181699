package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Mr-Dark-debug/glossa/internal/audio"
	"github.com/Mr-Dark-debug/glossa/internal/dictionary"
	"github.com/Mr-Dark-debug/glossa/internal/logger"
	"github.com/Mr-Dark-debug/glossa/internal/lookup"
	"github.com/Mr-Dark-debug/glossa/internal/session"
	"github.com/Mr-Dark-debug/glossa/pkg/timeutil"
)

// ────────────────────────────────────────────────────────────
// Focus
// ────────────────────────────────────────────────────────────

// Focus represents which part of the screen receives keyboard input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
)

// disclosureKind selects one of the collapsible sections of a card.
type disclosureKind int

const (
	disclosureSynonyms disclosureKind = iota
	disclosureAntonyms
)

type disclosureKey struct {
	row  int
	kind disclosureKind
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the Glossa TUI.
type Model struct {
	ctx    context.Context
	lookup lookup.Lookuper
	player audio.Loader
	slot   *audio.Slot
	opts   session.Options
	keys   keyMap
	log    zerolog.Logger

	// Screen state
	state session.State

	// UI state
	input    textinput.Model
	focus    Focus
	selected int
	open     map[disclosureKey]bool
	width    int
	height   int
	playing  bool
	playSeq  int

	// Status
	statusMsg string
	statusErr bool
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer enables the audio affordance.
func WithPlayer(player audio.Loader) Option {
	return func(m *Model) { m.player = player }
}

// WithSessionOptions sets how lookups are turned into views.
func WithSessionOptions(opts session.Options) Option {
	return func(m *Model) { m.opts = opts }
}

// WithContext sets the context passed to lookups and playback.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel creates a new TUI model backed by the given lookup client.
func NewModel(lk lookup.Lookuper, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Search..."
	input.PromptStyle = searchPromptStyle
	input.PlaceholderStyle = searchPlaceholderStyle
	input.Cursor.Style = cursorStyle
	input.Focus()

	m := Model{
		ctx:    context.Background(),
		lookup: lk,
		slot:   &audio.Slot{},
		keys:   defaultKeyMap(),
		log:    logger.New("tui"),
		state:  session.Idle{},
		input:  input,
		open:   make(map[disclosureKey]bool),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current screen state.
func (m Model) State() session.State {
	return m.state
}

// Close releases the loaded audio clip, if any.
func (m Model) Close() error {
	return m.slot.Release()
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type lookupDoneMsg struct {
	word    string
	results []dictionary.LookupResult
	err     error
	elapsed time.Duration
}

// audioDoneMsg reports the end of the playback started as number seq.
type audioDoneMsg struct {
	seq int
	err error
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) lookupWord(word string) tea.Cmd {
	ctx, lk := m.ctx, m.lookup
	return func() tea.Msg {
		start := time.Now()
		results, err := lk.Lookup(ctx, word)
		return lookupDoneMsg{word: word, results: results, err: err, elapsed: time.Since(start)}
	}
}

// playAudio loads url into the slot and plays it. The ticket is taken now
// so a clear issued while the clip downloads discards the late clip.
func (m Model) playAudio(url string, seq int) tea.Cmd {
	ctx, player, slot := m.ctx, m.player, m.slot
	ticket := slot.Ticket()
	return func() tea.Msg {
		clip, err := player.Load(ctx, url)
		if err != nil {
			return audioDoneMsg{seq: seq, err: err}
		}
		if !slot.Install(ticket, clip) {
			return audioDoneMsg{seq: seq, err: audio.ErrClosed}
		}
		return audioDoneMsg{seq: seq, err: clip.Play(ctx)}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lookupDoneMsg:
		if _, idle := m.state.(session.Idle); idle {
			m.log.Debug().Str("word", msg.word).Msg("dropping result of a cleared search")
			return m, nil
		}
		if msg.err != nil {
			m.state = session.Reject(m.state, msg.word, msg.err)
			m.setStatus("", false)
			m.log.Info().Err(msg.err).Str("word", msg.word).Msg("lookup failed")
			return m, nil
		}
		m.state = session.Resolve(m.state, msg.word, msg.results, m.opts)
		m.selected = 0
		m.open = make(map[disclosureKey]bool)
		rows := len(m.view().Rows)
		m.setStatus(fmt.Sprintf("%s in %s", plural(rows, "definition"), timeutil.FormatDuration(msg.elapsed)), false)
		m.log.Debug().Str("word", msg.word).Int("rows", rows).Dur("elapsed", msg.elapsed).Msg("lookup resolved")
		return m, nil

	case audioDoneMsg:
		// A superseded playback finishing says nothing about the current one.
		if msg.seq != m.playSeq {
			return m, nil
		}
		m.playing = false
		switch {
		case msg.err == nil, errors.Is(msg.err, audio.ErrClosed), errors.Is(msg.err, context.Canceled):
			m.setStatus("", false)
		default:
			m.log.Warn().Err(msg.err).Msg("audio playback failed")
			m.setStatus(fmt.Sprintf("Audio unavailable: %v", msg.err), true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes keyboard input based on current focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {

	// ── Global ──

	switch {
	case key.Matches(msg, m.keys.ForceQ):
		_ = m.slot.Release()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		return m.clear(), nil

	case key.Matches(msg, m.keys.Focus):
		return m.toggleFocus(), nil

	case key.Matches(msg, m.keys.Play) && (m.focus == FocusResults || msg.Type != tea.KeyRunes):
		return m.play()
	}

	// ── Search box ──

	if m.focus == FocusSearch {
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// ── Results ──

	rows := len(m.view().Rows)
	cols := columnsFor(m.width)

	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.slot.Release()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.focusSearch(), nil
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+cols, 0, maxInt(rows-1, 0))
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-cols, 0, maxInt(rows-1, 0))
	case key.Matches(msg, m.keys.Right):
		m.selected = clamp(m.selected+1, 0, maxInt(rows-1, 0))
	case key.Matches(msg, m.keys.Left):
		m.selected = clamp(m.selected-1, 0, maxInt(rows-1, 0))
	case key.Matches(msg, m.keys.Synonyms):
		m.toggleDisclosure(disclosureSynonyms)
	case key.Matches(msg, m.keys.Antonyms):
		m.toggleDisclosure(disclosureAntonyms)
	}

	return m, nil
}

// submit starts a lookup for the search text. Any previous result and
// its audio clip are discarded immediately.
func (m Model) submit() (tea.Model, tea.Cmd) {
	next, ok := session.Submit(m.state, m.input.Value())
	if !ok {
		return m, nil
	}
	_ = m.slot.Release()
	m.state = next
	m.selected = 0
	m.open = make(map[disclosureKey]bool)
	m.playing = false
	m.playSeq++
	word := session.Word(next)
	m.setStatus(fmt.Sprintf("Looking up %q...", word), false)
	m.log.Debug().Str("word", word).Msg("lookup submitted")
	return m, m.lookupWord(word)
}

// clear returns the screen to Idle and drops the search text and audio.
func (m Model) clear() Model {
	_ = m.slot.Release()
	m.state = session.Clear(m.state)
	m.input.SetValue("")
	m.selected = 0
	m.open = make(map[disclosureKey]bool)
	m.playing = false
	m.playSeq++
	m.setStatus("", false)
	return m.focusSearch()
}

func (m Model) play() (tea.Model, tea.Cmd) {
	view := m.view()
	if m.player == nil || !view.HasAudio() {
		return m, nil
	}
	m.playing = true
	m.playSeq++
	m.setStatus("Playing pronunciation...", false)
	return m, m.playAudio(view.AudioURL, m.playSeq)
}

func (m Model) toggleFocus() Model {
	if m.focus == FocusResults {
		return m.focusSearch()
	}
	if len(m.view().Rows) == 0 {
		return m
	}
	m.focus = FocusResults
	m.input.Blur()
	return m
}

func (m Model) focusSearch() Model {
	m.focus = FocusSearch
	m.input.Focus()
	return m
}

func (m *Model) toggleDisclosure(kind disclosureKind) {
	rows := m.view().Rows
	if m.selected >= len(rows) {
		return
	}
	row := rows[m.selected]
	if kind == disclosureSynonyms && row.Synonyms == nil {
		return
	}
	if kind == disclosureAntonyms && row.Antonyms == nil {
		return
	}
	k := disclosureKey{row: m.selected, kind: kind}
	open := make(map[disclosureKey]bool, len(m.open)+1)
	for k, v := range m.open {
		open[k] = v
	}
	open[k] = !open[k]
	m.open = open
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// view returns the loaded view, or an empty one in any other state.
func (m Model) view() session.View {
	if loaded, ok := m.state.(session.Loaded); ok {
		return loaded.View
	}
	return session.View{}
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	search := renderSearch(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(search) - lipgloss.Height(footer)
	body := renderBody(&m, m.width, maxInt(bodyHeight, 1))

	return lipgloss.JoinVertical(lipgloss.Left, header, search, body, footer)
}

// renderBody picks the body for the current screen state.
func renderBody(m *Model, width, height int) string {
	var body string
	switch st := m.state.(type) {
	case session.Loading:
		body = loadingStyle.Render(fmt.Sprintf("Looking up %q...", st.Word))
	case session.Errored:
		body = errorStyle.Render(st.Message)
	case session.Loaded:
		body = renderResults(m, st.View, width, height)
	default:
		body = emptyStateStyle.Render(
			"Type a word and press enter.\n\n" +
				"Definitions, examples, synonyms and antonyms\n" +
				"appear here as cards.")
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(body)
}
