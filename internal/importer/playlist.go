package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/logging"
	"github.com/ytget/setlist/internal/model"
)

// Timeout constants
const (
	DefaultImportTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// ErrInvalidPlaylistURL is returned when the URL carries no playlist ID
var ErrInvalidPlaylistURL = errors.New("invalid playlist URL")

// Result summarizes one import run
type Result struct {
	PlaylistID string
	Added      []model.Song
	Skipped    int
}

// Importer adds the songs of a video playlist to the catalog
type Importer struct {
	fetcher Fetcher
	songs   *catalog.SongService
	timeout time.Duration
	logger  *zap.Logger
}

// New creates an importer. fetcher may be nil to use yt-dlp.
func New(fetcher Fetcher, songs *catalog.SongService, logger *zap.Logger) *Importer {
	if fetcher == nil {
		fetcher = NewYTDLPFetcher()
	}
	return &Importer{
		fetcher: fetcher,
		songs:   songs,
		timeout: DefaultImportTimeout,
		logger:  logging.OrNop(logger),
	}
}

// SetTimeout sets the timeout for fetching a playlist
func (i *Importer) SetTimeout(timeout time.Duration) {
	i.timeout = timeout
}

// Import fetches the playlist at url and adds every video as a song in key.
// Videos already in the catalog (same title and artist, ignoring case) are
// skipped. All new songs are written in one update.
func (i *Importer) Import(ctx context.Context, url, key string) (Result, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return Result{}, err
	}

	key = strings.TrimSpace(key)
	probe := model.Song{Title: "-", Artist: "-", Key: key}
	if err := probe.Validate(); err != nil {
		return Result{}, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	items, err := i.fetcher.FetchPlaylist(fetchCtx, playlistID)
	if err != nil {
		i.logger.Error("Playlist fetch failed", zap.String("playlist", playlistID), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get playlist items: %w", err)
	}

	existing, err := i.songs.List(ctx)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]bool, len(existing)+len(items))
	for _, s := range existing {
		seen[dedupKey(s.Title, s.Artist)] = true
	}

	result := Result{PlaylistID: playlistID}
	candidates := make([]model.Song, 0, len(items))
	for _, it := range items {
		artist, title := ParseVideoTitle(it.Title)
		if title == "" {
			result.Skipped++
			continue
		}
		k := dedupKey(title, artist)
		if seen[k] {
			result.Skipped++
			continue
		}
		seen[k] = true
		candidates = append(candidates, model.Song{Title: title, Artist: artist, Key: key})
	}

	added, err := i.songs.AddMany(ctx, candidates)
	if err != nil {
		return Result{}, err
	}
	result.Added = added

	i.logger.Info("Playlist imported",
		zap.String("playlist", playlistID),
		zap.Int("added", len(added)),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// ExtractPlaylistID returns the list= parameter of a playlist URL
func ExtractPlaylistID(url string) (string, error) {
	if !strings.Contains(url, PlaylistParam) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPlaylistURL, url)
	}

	parts := strings.SplitN(url, PlaylistParam, 2)
	id := parts[1]
	if idx := strings.Index(id, ParamSeparator); idx >= 0 {
		id = id[:idx]
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty playlist ID", ErrInvalidPlaylistURL)
	}
	return id, nil
}

func dedupKey(title, artist string) string {
	return strings.ToLower(title) + "\x00" + strings.ToLower(artist)
}
