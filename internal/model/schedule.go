package model

import (
	"strings"
)

// Schedule is a named, ordered lineup of song references.
// Songs holds song IDs only; an ID whose song was deleted stays here and is
// dropped when the schedule is resolved against the catalog.
type Schedule struct {
	ID          string   `json:"id" yaml:"id"`
	ServiceName string   `json:"service_name" yaml:"service_name"`
	Songs       []string `json:"songs" yaml:"songs"`
}

// Validate checks the schedule editor rules. Returns nil when valid.
func (s Schedule) Validate() error {
	errs := ValidationErrors{}

	if strings.TrimSpace(s.ServiceName) == "" {
		errs[FieldServiceName] = MsgServiceNameRequired
	}
	if len(s.Songs) == 0 {
		errs[FieldSongs] = MsgSongsRequired
	}

	return errs.OrNil()
}

// HasSong reports whether the schedule references the given song ID
func (s Schedule) HasSong(songID string) bool {
	for _, id := range s.Songs {
		if id == songID {
			return true
		}
	}
	return false
}
