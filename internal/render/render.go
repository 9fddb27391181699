// Package render prints a lookup for non-interactive use.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Mr-Dark-debug/glossa/internal/dictionary"
	"github.com/Mr-Dark-debug/glossa/internal/session"
	"github.com/Mr-Dark-debug/glossa/pkg/jsonutil"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	_ pflag.Value = (*Format)(nil)

	// AllFormats lists the accepted values of Format.
	AllFormats = []Format{FormatText, FormatJSON, FormatYAML}
)

func (f *Format) Set(val string) error {
	for _, format := range AllFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "format"
}

// document is the JSON/YAML shape of a lookup.
type document struct {
	Word        string           `json:"word" yaml:"word"`
	Phonetic    string           `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Audio       string           `json:"audio,omitempty" yaml:"audio,omitempty"`
	Definitions []dictionary.Row `json:"definitions" yaml:"definitions"`
	Sources     []string         `json:"sources,omitempty" yaml:"sources,omitempty"`
}

func newDocument(view session.View) document {
	rows := view.Rows
	if rows == nil {
		rows = []dictionary.Row{}
	}
	return document{
		Word:        view.Headword,
		Phonetic:    view.Phonetic,
		Audio:       view.AudioURL,
		Definitions: rows,
		Sources:     view.SourceURLs,
	}
}

// Write renders view to w in the given format.
func Write(w io.Writer, format Format, view session.View) error {
	switch format {
	case FormatJSON:
		return JSON(w, view)
	case FormatYAML:
		return YAML(w, view)
	case FormatText, "":
		return Text(w, view)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

func JSON(w io.Writer, view session.View) error {
	return jsonutil.WriteIndented(w, newDocument(view))
}

func YAML(w io.Writer, view session.View) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(view)); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	return enc.Close()
}

var titleCase = cases.Title(language.English)

// Title capitalizes a part of speech for headings.
func Title(s string) string {
	return titleCase.String(s)
}

// Text prints a human-readable listing. Synonym and antonym sections are
// always expanded. Colors follow color.NoColor.
func Text(w io.Writer, view session.View) error {
	headword := color.New(color.FgCyan, color.Bold)
	pos := color.New(color.FgMagenta, color.Bold)
	label := color.New(color.FgBlue)
	dim := color.New(color.Faint)

	var b strings.Builder

	b.WriteString(headword.Sprint(view.Headword))
	if view.Phonetic != "" {
		b.WriteString("  " + dim.Sprint(view.Phonetic))
	}
	b.WriteString("\n")
	if view.HasAudio() {
		b.WriteString(label.Sprint("Audio: ") + view.AudioURL + "\n")
	}

	for i, row := range view.Rows {
		b.WriteString("\n")
		if row.PartOfSpeech != "" {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, pos.Sprint(Title(row.PartOfSpeech))))
		} else {
			b.WriteString(fmt.Sprintf("%d.\n", i+1))
		}
		b.WriteString("   " + label.Sprint("Definition: ") + row.Definition + "\n")
		if row.Example != nil {
			b.WriteString("   " + label.Sprint("Example: ") + *row.Example + "\n")
		}
		if row.Synonyms != nil {
			b.WriteString("   " + label.Sprint("Synonyms: ") + strings.Join(row.Synonyms, ", ") + "\n")
		}
		if row.Antonyms != nil {
			b.WriteString("   " + label.Sprint("Antonyms: ") + strings.Join(row.Antonyms, ", ") + "\n")
		}
	}

	if len(view.SourceURLs) > 0 {
		b.WriteString("\n" + dim.Sprint("Source: "+strings.Join(view.SourceURLs, ", ")) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
