package importer

import (
	"context"

	"github.com/ytget/ytdlp/v2"
)

// PlaylistItem is one video of a playlist
type PlaylistItem struct {
	VideoID string
	Title   string
}

// Fetcher lists the videos of a playlist
type Fetcher interface {
	FetchPlaylist(ctx context.Context, playlistID string) ([]PlaylistItem, error)
}

// YTDLPFetcher reads playlists with the ytdlp library
type YTDLPFetcher struct{}

// NewYTDLPFetcher creates a fetcher backed by ytdlp
func NewYTDLPFetcher() *YTDLPFetcher {
	return &YTDLPFetcher{}
}

// FetchPlaylist returns every item of the playlist (no limit)
func (y *YTDLPFetcher) FetchPlaylist(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}
