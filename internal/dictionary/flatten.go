package dictionary

import (
	"net/url"
	"strings"
)

// Row is one display card: a single definition together with the context
// of the meaning it was found in.
//
// Example is nil when the source has no example. Synonyms and Antonyms are
// nil when the meaning's list is empty, so "no data" never shows up as an
// empty group.
type Row struct {
	PartOfSpeech string   `json:"partOfSpeech" yaml:"part_of_speech"`
	Definition   string   `json:"definition" yaml:"definition"`
	Example      *string  `json:"example,omitempty" yaml:"example,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty" yaml:"antonyms,omitempty"`
}

// Columns is the parallel-sequence view of a row list. Index i of every
// column describes the same definition.
type Columns struct {
	Definitions   []string
	Examples      []*string
	PartsOfSpeech []string
	SynonymGroups [][]string
	AntonymGroups [][]string
}

// Len returns the shared length of all columns.
func (c Columns) Len() int {
	return len(c.Definitions)
}

// Flatten walks entries, then meanings, then definitions, and emits one row
// per definition. Every row of a meaning carries that meaning's synonym and
// antonym groups. Definitions with blank text are skipped.
func Flatten(results []LookupResult) []Row {
	var rows []Row
	for _, entry := range results {
		for _, meaning := range entry.Meanings {
			synonyms := group(meaning.Synonyms)
			antonyms := group(meaning.Antonyms)
			for _, def := range meaning.Definitions {
				if strings.TrimSpace(def.Definition) == "" {
					continue
				}
				rows = append(rows, Row{
					PartOfSpeech: meaning.PartOfSpeech,
					Definition:   def.Definition,
					Example:      optional(def.Example),
					Synonyms:     synonyms,
					Antonyms:     antonyms,
				})
			}
		}
	}
	return rows
}

// ToColumns splits rows into the five parallel columns.
func ToColumns(rows []Row) Columns {
	c := Columns{
		Definitions:   make([]string, 0, len(rows)),
		Examples:      make([]*string, 0, len(rows)),
		PartsOfSpeech: make([]string, 0, len(rows)),
		SynonymGroups: make([][]string, 0, len(rows)),
		AntonymGroups: make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		c.Definitions = append(c.Definitions, r.Definition)
		c.Examples = append(c.Examples, r.Example)
		c.PartsOfSpeech = append(c.PartsOfSpeech, r.PartOfSpeech)
		c.SynonymGroups = append(c.SynonymGroups, r.Synonyms)
		c.AntonymGroups = append(c.AntonymGroups, r.Antonyms)
	}
	return c
}

// Headword returns the word of the first entry.
func Headword(results []LookupResult) string {
	if len(results) == 0 {
		return ""
	}
	return results[0].Word
}

// PhoneticText returns the first entry's phonetic spelling, falling back to
// the first transcription listed in its phonetics.
func PhoneticText(results []LookupResult) string {
	if len(results) == 0 {
		return ""
	}
	if results[0].Phonetic != "" {
		return results[0].Phonetic
	}
	for _, ph := range results[0].Phonetics {
		if ph.Text != "" {
			return ph.Text
		}
	}
	return ""
}

// AudioURL returns the clip of the first phonetic of the first entry, or
// "" when it is missing or unusable.
func AudioURL(results []LookupResult) string {
	if len(results) == 0 || len(results[0].Phonetics) == 0 {
		return ""
	}
	return PlayableURL(results[0].Phonetics[0].Audio)
}

// FirstAudioURL returns the first usable clip across all entries.
func FirstAudioURL(results []LookupResult) string {
	for _, entry := range results {
		for _, ph := range entry.Phonetics {
			if u := PlayableURL(ph.Audio); u != "" {
				return u
			}
		}
	}
	return ""
}

// PlayableURL normalizes a clip reference to an absolute http(s) URL.
// Protocol-relative references ("//host/clip.mp3") get https. Anything
// else that is not an http(s) URL with a host yields "".
func PlayableURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// SourceURLs collects the attribution links of all entries, deduplicated in
// first-seen order.
func SourceURLs(results []LookupResult) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, entry := range results {
		for _, u := range entry.SourceURLs {
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			urls = append(urls, u)
		}
	}
	return urls
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func group(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}
