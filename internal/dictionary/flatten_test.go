package dictionary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

const helloPayload = `[{
	"word": "hello",
	"phonetic": "/həˈloʊ/",
	"phonetics": [
		{"text": "/həˈloʊ/", "audio": "https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3"},
		{"text": "/hɛˈləʊ/", "audio": ""}
	],
	"meanings": [
		{
			"partOfSpeech": "noun",
			"definitions": [
				{"definition": "\"Hello!\" or an equivalent greeting.", "synonyms": [], "antonyms": []}
			],
			"synonyms": ["greeting"],
			"antonyms": []
		},
		{
			"partOfSpeech": "interjection",
			"definitions": [
				{"definition": "A greeting used when answering the telephone.", "example": "Hello? How may I help you?"},
				{"definition": "A call for response if it is not clear if anyone is present or listening."}
			],
			"synonyms": [],
			"antonyms": ["bye", "goodbye"]
		}
	],
	"sourceUrls": ["https://en.wiktionary.org/wiki/hello"]
}]`

func decode(t *testing.T, payload string) []LookupResult {
	t.Helper()
	var results []LookupResult
	require.NoError(t, json.Unmarshal([]byte(payload), &results))
	return results
}

func TestFlatten(t *testing.T) {
	rows := Flatten(decode(t, helloPayload))

	want := []Row{
		{
			PartOfSpeech: "noun",
			Definition:   "\"Hello!\" or an equivalent greeting.",
			Synonyms:     []string{"greeting"},
		},
		{
			PartOfSpeech: "interjection",
			Definition:   "A greeting used when answering the telephone.",
			Example:      strPtr("Hello? How may I help you?"),
			Antonyms:     []string{"bye", "goodbye"},
		},
		{
			PartOfSpeech: "interjection",
			Definition:   "A call for response if it is not clear if anyone is present or listening.",
			Antonyms:     []string{"bye", "goodbye"},
		},
	}
	assert.Equal(t, want, rows)
}

func TestFlatten_GroupsFollowEveryDefinitionOfTheirMeaning(t *testing.T) {
	results := []LookupResult{{
		Word: "fast",
		Meanings: []Meaning{{
			PartOfSpeech: "adjective",
			Definitions: []Definition{
				{Definition: "Firmly fixed."},
				{Definition: "Moving with great speed."},
			},
			Synonyms: []string{"quick"},
		}},
	}}

	rows := Flatten(results)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"quick"}, rows[0].Synonyms)
	assert.Equal(t, []string{"quick"}, rows[1].Synonyms)

	cols := ToColumns(rows)
	assert.Len(t, cols.SynonymGroups, 2)
	assert.Equal(t, cols.SynonymGroups[0], cols.SynonymGroups[1])
}

func TestFlatten_ColumnsHaveEqualLength(t *testing.T) {
	tests := []struct {
		name    string
		results []LookupResult
		want    int
	}{
		{
			name: "no results",
			want: 0,
		},
		{
			name:    "meaning without definitions",
			results: []LookupResult{{Word: "x", Meanings: []Meaning{{PartOfSpeech: "noun", Synonyms: []string{"y"}}}}},
			want:    0,
		},
		{
			name: "several entries",
			results: []LookupResult{
				{Word: "run", Meanings: []Meaning{
					{PartOfSpeech: "verb", Definitions: []Definition{{Definition: "a"}, {Definition: "b"}, {Definition: "c"}}},
					{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "d"}}, Antonyms: []string{"walk"}},
				}},
				{Word: "run", Meanings: []Meaning{
					{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "e"}, {Definition: "f"}}},
				}},
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := ToColumns(Flatten(tt.results))
			assert.Equal(t, tt.want, cols.Len())
			assert.Len(t, cols.Examples, tt.want)
			assert.Len(t, cols.PartsOfSpeech, tt.want)
			assert.Len(t, cols.SynonymGroups, tt.want)
			assert.Len(t, cols.AntonymGroups, tt.want)
		})
	}
}

func TestFlatten_AbsentValues(t *testing.T) {
	rows := Flatten([]LookupResult{{
		Word: "cat",
		Meanings: []Meaning{{
			PartOfSpeech: "noun",
			Definitions:  []Definition{{Definition: "A small domesticated carnivore.", Example: ""}},
			Synonyms:     []string{},
			Antonyms:     nil,
		}},
	}})

	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Example)
	assert.Nil(t, rows[0].Synonyms)
	assert.Nil(t, rows[0].Antonyms)
}

func TestFlatten_DoesNotAliasSource(t *testing.T) {
	results := []LookupResult{{
		Word: "big",
		Meanings: []Meaning{{
			PartOfSpeech: "adjective",
			Definitions:  []Definition{{Definition: "Of great size."}},
			Synonyms:     []string{"large"},
		}},
	}}

	rows := Flatten(results)
	results[0].Meanings[0].Synonyms[0] = "changed"
	assert.Equal(t, []string{"large"}, rows[0].Synonyms)
}

func TestHeadwordAndPhonetics(t *testing.T) {
	results := decode(t, helloPayload)

	assert.Equal(t, "hello", Headword(results))
	assert.Equal(t, "/həˈloʊ/", PhoneticText(results))
	assert.Equal(t, "https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3", AudioURL(results))
	assert.Equal(t, []string{"https://en.wiktionary.org/wiki/hello"}, SourceURLs(results))
}

func TestPhoneticText(t *testing.T) {
	tests := []struct {
		name    string
		results []LookupResult
		want    string
	}{
		{name: "no results", want: ""},
		{
			name:    "top-level phonetic",
			results: []LookupResult{{Word: "a", Phonetic: "/eɪ/", Phonetics: []Phonetic{{Text: "/ə/"}}}},
			want:    "/eɪ/",
		},
		{
			name:    "falls back to first transcription",
			results: []LookupResult{{Word: "a", Phonetics: []Phonetic{{Audio: "https://x/a.mp3"}, {Text: "/ə/"}}}},
			want:    "/ə/",
		},
		{
			name:    "nothing available",
			results: []LookupResult{{Word: "a"}},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneticText(tt.results))
		})
	}
}

func TestAudioURL(t *testing.T) {
	tests := []struct {
		name      string
		results   []LookupResult
		wantFirst string
		wantAny   string
	}{
		{name: "no results"},
		{
			name:    "no phonetics",
			results: []LookupResult{{Word: "a"}},
		},
		{
			name: "first phonetic has no audio",
			results: []LookupResult{{Word: "a", Phonetics: []Phonetic{
				{Text: "/ə/"},
				{Audio: "https://x/a-uk.mp3"},
			}}},
			wantFirst: "",
			wantAny:   "https://x/a-uk.mp3",
		},
		{
			name: "audio in a later entry",
			results: []LookupResult{
				{Word: "a"},
				{Word: "a", Phonetics: []Phonetic{{Audio: "https://x/a-us.mp3"}}},
			},
			wantFirst: "",
			wantAny:   "https://x/a-us.mp3",
		},
		{
			name: "protocol-relative audio",
			results: []LookupResult{{Word: "a", Phonetics: []Phonetic{
				{Audio: "//ssl.gstatic.com/a.mp3"},
			}}},
			wantFirst: "https://ssl.gstatic.com/a.mp3",
			wantAny:   "https://ssl.gstatic.com/a.mp3",
		},
		{
			name: "unusable audio counts as none",
			results: []LookupResult{{Word: "a", Phonetics: []Phonetic{
				{Audio: "not a url"},
				{Audio: "https://x/a-uk.mp3"},
			}}},
			wantFirst: "",
			wantAny:   "https://x/a-uk.mp3",
		},
		{
			name:      "first phonetic has audio",
			results:   []LookupResult{{Word: "a", Phonetics: []Phonetic{{Audio: "https://x/a.mp3"}}}},
			wantFirst: "https://x/a.mp3",
			wantAny:   "https://x/a.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFirst, AudioURL(tt.results))
			assert.Equal(t, tt.wantAny, FirstAudioURL(tt.results))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(decode(t, helloPayload)))
	assert.NoError(t, Validate(nil))

	tests := []struct {
		name    string
		results []LookupResult
	}{
		{
			name:    "missing word",
			results: []LookupResult{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.results))
		})
	}
}

func TestValidate_OddOptionalFieldsPass(t *testing.T) {
	results := []LookupResult{{
		Word: "hello",
		Phonetics: []Phonetic{
			{Audio: "//ssl.gstatic.com/dictionary/static/sounds/20200429/hello--_gb_1.mp3"},
			{Audio: "not a url"},
		},
		Meanings: []Meaning{{
			PartOfSpeech: "noun",
			Definitions:  []Definition{{Example: "no definition"}, {Definition: "A greeting."}},
		}},
	}}

	require.NoError(t, Validate(results))

	rows := Flatten(results)
	require.Len(t, rows, 1)
	assert.Equal(t, "A greeting.", rows[0].Definition)
}

func TestPlayableURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "  ", want: ""},
		{raw: "https://x/a.mp3", want: "https://x/a.mp3"},
		{raw: "http://x/a.mp3", want: "http://x/a.mp3"},
		{raw: "//ssl.gstatic.com/a.mp3", want: "https://ssl.gstatic.com/a.mp3"},
		{raw: "not a url", want: ""},
		{raw: "/media/a.mp3", want: ""},
		{raw: "ftp://x/a.mp3", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, PlayableURL(tt.raw))
		})
	}
}
