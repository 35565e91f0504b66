package importer

import (
	"regexp"
	"strings"
)

// UnknownArtist is used when a video title has no "Artist - Title" separator
const UnknownArtist = "Unknown"

// Separators tried in order between artist and title
var titleSeparators = []string{" - ", " – ", " — ", " | "}

// Bracketed suffixes that describe the upload rather than the song
var noisePattern = regexp.MustCompile(`(?i)\s*[\(\[][^\)\]]*\b(official|lyrics?|audio|video|visualizer|hd|4k|live|acoustic session)\b[^\)\]]*[\)\]]`)

// ParseVideoTitle splits a video title into artist and song title.
// "Hillsong - Oceans (Official Video)" -> ("Hillsong", "Oceans").
func ParseVideoTitle(raw string) (artist, title string) {
	cleaned := strings.TrimSpace(noisePattern.ReplaceAllString(raw, ""))
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	for _, sep := range titleSeparators {
		if idx := strings.Index(cleaned, sep); idx > 0 {
			artist = strings.TrimSpace(cleaned[:idx])
			title = strings.TrimSpace(cleaned[idx+len(sep):])
			if artist != "" && title != "" {
				return artist, title
			}
		}
	}

	return UnknownArtist, cleaned
}
