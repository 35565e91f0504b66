package model

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation messages shown under the form fields
const (
	MsgTitleRequired       = "Title is required"
	MsgArtistRequired      = "Artist is required"
	MsgKeyRequired         = "Key is required"
	MsgKeyTooLong          = "Key must be at most 2 characters"
	MsgServiceNameRequired = "Service name is required"
	MsgSongsRequired       = "Select at least 1 song"
)

// Form field names used as ValidationErrors keys
const (
	FieldTitle       = "title"
	FieldArtist      = "artist"
	FieldKey         = "key"
	FieldServiceName = "service_name"
	FieldSongs       = "songs"
)

// MaxKeyLength is the longest key accepted by the song form (e.g. "C#")
const MaxKeyLength = 2

// Keys lists the musical keys offered by the key picker
var Keys = []string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// Song is a single catalog entry
type Song struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Key    string `json:"key" yaml:"key"`
}

// NewID returns a fresh opaque identifier for songs and schedules
func NewID() string {
	return uuid.NewString()
}

// Validate checks the song form rules. Returns nil when the song is valid.
func (s Song) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(s.Title) == "" {
		errs[FieldTitle] = MsgTitleRequired
	}
	if strings.TrimSpace(s.Artist) == "" {
		errs[FieldArtist] = MsgArtistRequired
	}

	switch n := utf8.RuneCountInString(s.Key); {
	case n == 0:
		errs[FieldKey] = MsgKeyRequired
	case n > MaxKeyLength:
		errs[FieldKey] = MsgKeyTooLong
	}

	return errs.OrNil()
}

// Line renders the song the way schedules display and export it: "(KEY) Title - Artist"
func (s Song) Line() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(s.Key)
	b.WriteString(") ")
	b.WriteString(s.Title)
	b.WriteString(" - ")
	b.WriteString(s.Artist)
	return b.String()
}

// IsKnownKey reports whether key is one of the picker keys
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
