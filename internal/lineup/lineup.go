// Package lineup joins schedules against the song catalog and renders them.
// Everything here is pure: no store access, no UI.
package lineup

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ytget/setlist/internal/model"
)

// Resolve maps schedule.Songs to song records in schedule order.
// IDs with no matching song are dropped without error.
func Resolve(schedule model.Schedule, songs []model.Song) []model.Song {
	byID := make(map[string]model.Song, len(songs))
	for _, s := range songs {
		byID[s.ID] = s
	}

	resolved := make([]model.Song, 0, len(schedule.Songs))
	for _, id := range schedule.Songs {
		if s, ok := byID[id]; ok {
			resolved = append(resolved, s)
		}
	}
	return resolved
}

// ExportText renders the clipboard text for a schedule: the service name line
// followed by one "(KEY) Title - Artist" line per resolved song.
func ExportText(schedule model.Schedule, songs []model.Song) string {
	var b strings.Builder
	b.WriteString(schedule.ServiceName)
	b.WriteString("\n")
	for _, s := range Resolve(schedule, songs) {
		b.WriteString(s.Line())
		b.WriteString("\n")
	}
	return b.String()
}

// Filter returns songs whose title or artist contains term (case-insensitive),
// sorted by title. The term is matched as typed, surrounding spaces included.
// An empty term keeps every song. The input is not modified.
func Filter(songs []model.Song, term string) []model.Song {
	needle := strings.ToLower(term)

	out := make([]model.Song, 0, len(songs))
	for _, s := range songs {
		if needle == "" ||
			strings.Contains(strings.ToLower(s.Title), needle) ||
			strings.Contains(strings.ToLower(s.Artist), needle) {
			out = append(out, s)
		}
	}

	SortByTitle(out)
	return out
}

// SortByTitle sorts songs in place by title using locale-aware collation,
// ignoring case. Titles equal under collation fall back to byte order.
func SortByTitle(songs []model.Song) {
	// Collator is not safe for concurrent use
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(songs, func(i, j int) bool {
		if cmp := c.CompareString(songs[i].Title, songs[j].Title); cmp != 0 {
			return cmp < 0
		}
		return songs[i].Title < songs[j].Title
	})
}

// Toggle adds id to the selection when absent and removes it when present.
// New picks go to the end so the lineup keeps the order songs were chosen in.
func Toggle(selected []string, id string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == id {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Entry pairs a schedule with its resolved songs for list rendering
type Entry struct {
	Schedule model.Schedule
	Songs    []model.Song
}

// Board resolves every schedule against the same catalog, keeping schedule order
func Board(schedules []model.Schedule, songs []model.Song) []Entry {
	entries := make([]Entry, 0, len(schedules))
	for _, sc := range schedules {
		entries = append(entries, Entry{Schedule: sc, Songs: Resolve(sc, songs)})
	}
	return entries
}
