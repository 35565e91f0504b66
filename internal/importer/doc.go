package importer

// Package importer turns a video playlist into catalog songs. Playlist items
// are fetched through the ytdlp library and their titles are split into
// artist and song title.
