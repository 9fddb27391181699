// Package dictionary defines the Free Dictionary API payload and the
// flattening of that payload into display rows.
//
// The API returns an array of entries (one per etymology). Each entry holds
// meanings grouped by part of speech, and each meaning holds definitions.
// Glossa decodes into the explicit schemas below at the network boundary and
// never touches the raw JSON afterwards.
package dictionary

// LookupResult is one entry returned for a searched word.
type LookupResult struct {
	Word       string     `json:"word" yaml:"word" validate:"required"`
	Phonetic   string     `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics" yaml:"phonetics" validate:"dive"`
	Meanings   []Meaning  `json:"meanings" yaml:"meanings" validate:"dive"`
	SourceURLs []string   `json:"sourceUrls,omitempty" yaml:"source_urls,omitempty"`
}

// Phonetic is a transcription and/or a pronunciation clip. Audio is kept
// as served; it may be empty or protocol-relative.
type Phonetic struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Audio     string `json:"audio,omitempty" yaml:"audio,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty" yaml:"source_url,omitempty"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech" yaml:"part_of_speech"`
	Definitions  []Definition `json:"definitions" yaml:"definitions" validate:"dive"`
	Synonyms     []string     `json:"synonyms" yaml:"synonyms"`
	Antonyms     []string     `json:"antonyms" yaml:"antonyms"`
}

// Definition is a single sense with an optional usage example.
//
// The API also reports synonyms and antonyms per definition. They are
// decoded so the payload round-trips, but display rows take their groups
// from the enclosing Meaning.
type Definition struct {
	Definition string   `json:"definition" yaml:"definition"`
	Example    string   `json:"example,omitempty" yaml:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty" yaml:"antonyms,omitempty"`
}
