package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/glossa/internal/lookup"
	"github.com/Mr-Dark-debug/glossa/internal/render"
	"github.com/Mr-Dark-debug/glossa/internal/session"
)

const helloBody = `[{
	"word": "hello",
	"phonetic": "/həˈloʊ/",
	"phonetics": [{"text": "/həˈloʊ/", "audio": "https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3"}],
	"meanings": [{
		"partOfSpeech": "interjection",
		"definitions": [{"definition": "A greeting.", "example": "Hello, everyone."}],
		"synonyms": ["hi", "howdy"],
		"antonyms": []
	}],
	"sourceUrls": ["https://en.wiktionary.org/wiki/hello"]
}]`

func newDictionaryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/hello" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
			return
		}
		_, _ = w.Write([]byte(helloBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// execute runs the root command in an empty directory with an empty home
// so no config file on the machine is picked up.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "glossa", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	for _, name := range []string{"config", "api-url", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"lookup", "tui", "version"}, names)
}

func TestNewLookupCommand(t *testing.T) {
	cmd := newLookupCommand(&globalOptions{})

	assert.Equal(t, "lookup WORD...", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, string(render.FormatText), formatFlag.DefValue)
	assert.Equal(t, "format", formatFlag.Value.Type())
}

func TestLookupCommand_JSON(t *testing.T) {
	srv := newDictionaryServer(t)

	out, err := execute(t, "--api-url", srv.URL, "lookup", "hello", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Word        string `json:"word"`
		Phonetic    string `json:"phonetic"`
		Audio       string `json:"audio"`
		Definitions []struct {
			PartOfSpeech string   `json:"partOfSpeech"`
			Definition   string   `json:"definition"`
			Synonyms     []string `json:"synonyms"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "hello", doc.Word)
	assert.Equal(t, "/həˈloʊ/", doc.Phonetic)
	assert.NotEmpty(t, doc.Audio)
	require.Len(t, doc.Definitions, 1)
	assert.Equal(t, "A greeting.", doc.Definitions[0].Definition)
	assert.Equal(t, []string{"hi", "howdy"}, doc.Definitions[0].Synonyms)
}

func TestLookupCommand_Text(t *testing.T) {
	srv := newDictionaryServer(t)
	t.Cleanup(func() { color.NoColor = false })

	out, err := execute(t, "--api-url", srv.URL, "lookup", "--no-color", "hello")
	require.NoError(t, err)

	assert.Contains(t, out, "hello  /həˈloʊ/")
	assert.Contains(t, out, "1. Interjection")
	assert.Contains(t, out, "Definition: A greeting.")
	assert.Contains(t, out, "Example: Hello, everyone.")
	assert.Contains(t, out, "Synonyms: hi, howdy")
	assert.NotContains(t, out, "Antonyms:")
}

func TestLookupCommand_NotFound(t *testing.T) {
	srv := newDictionaryServer(t)

	out, err := execute(t, "--api-url", srv.URL, "lookup", "zzzznotaword")
	require.Error(t, err)

	assert.Empty(t, out)
	assert.ErrorIs(t, err, lookup.ErrNotFound)
	assert.Contains(t, err.Error(), session.MessageNotFound)
}

func TestLookupCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "lookup", "hello", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLookupCommand_RequiresWord(t *testing.T) {
	_, err := execute(t, "lookup")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Glossa v"+Version+" (commit: unknown, built: unknown)\n", out)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: restoring working directory: %v", err)
		}
	})
}
