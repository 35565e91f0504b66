package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/lineup"
	"github.com/ytget/setlist/internal/logging"
	"github.com/ytget/setlist/internal/model"
	"github.com/ytget/setlist/internal/store"
)

// ErrSongNotFound is returned when a song ID is not in the catalog
var ErrSongNotFound = errors.New("song not found")

// SongService implements the song list screen operations
type SongService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewSongService creates a song service over s
func NewSongService(s *store.Store, logger *zap.Logger) *SongService {
	return &SongService{store: s, logger: logging.OrNop(logger)}
}

// List returns every song in stored order. A missing collection is empty.
func (s *SongService) List(ctx context.Context) ([]model.Song, error) {
	var songs []model.Song
	found, err := s.store.ReadData(ctx, store.KeySongs, &songs)
	if err != nil {
		return nil, err
	}
	if !found || songs == nil {
		return []model.Song{}, nil
	}
	return songs, nil
}

// Get returns the song with the given ID
func (s *SongService) Get(ctx context.Context, id string) (model.Song, error) {
	songs, err := s.List(ctx)
	if err != nil {
		return model.Song{}, err
	}
	for _, song := range songs {
		if song.ID == id {
			return song, nil
		}
	}
	return model.Song{}, fmt.Errorf("%w: %s", ErrSongNotFound, id)
}

// Search filters by title or artist and sorts by title
func (s *SongService) Search(ctx context.Context, term string) ([]model.Song, error) {
	songs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return lineup.Filter(songs, term), nil
}

// Add validates input, assigns a new ID and appends it to the catalog
func (s *SongService) Add(ctx context.Context, input model.Song) (model.Song, error) {
	song := normalizeSong(input)
	if err := song.Validate(); err != nil {
		return model.Song{}, err
	}

	songs, err := s.List(ctx)
	if err != nil {
		return model.Song{}, err
	}

	song.ID = model.NewID()
	if err := s.store.CreateData(ctx, store.KeySongs, append(songs, song)); err != nil {
		return model.Song{}, err
	}

	s.logger.Info("Song added", zap.String("id", song.ID), zap.String("title", song.Title))
	return song, nil
}

// AddMany appends several already-validated songs in a single write
func (s *SongService) AddMany(ctx context.Context, inputs []model.Song) ([]model.Song, error) {
	songs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	added := make([]model.Song, 0, len(inputs))
	for _, in := range inputs {
		song := normalizeSong(in)
		if err := song.Validate(); err != nil {
			return nil, fmt.Errorf("song %q: %w", in.Title, err)
		}
		song.ID = model.NewID()
		added = append(added, song)
	}
	if len(added) == 0 {
		return added, nil
	}

	if err := s.store.CreateData(ctx, store.KeySongs, append(songs, added...)); err != nil {
		return nil, err
	}

	s.logger.Info("Songs added", zap.Int("count", len(added)))
	return added, nil
}

// Edit replaces the fields of the song with the same ID. The collection must
// already exist; an unknown ID leaves the catalog unchanged.
func (s *SongService) Edit(ctx context.Context, input model.Song) (model.Song, error) {
	song := normalizeSong(input)
	if err := song.Validate(); err != nil {
		return model.Song{}, err
	}

	songs, err := s.List(ctx)
	if err != nil {
		return model.Song{}, err
	}

	updated := make([]model.Song, len(songs))
	for i, existing := range songs {
		if existing.ID == song.ID {
			existing.Title = song.Title
			existing.Artist = song.Artist
			existing.Key = song.Key
		}
		updated[i] = existing
	}

	if err := s.store.UpdateData(ctx, store.KeySongs, updated); err != nil {
		return model.Song{}, err
	}

	s.logger.Info("Song updated", zap.String("id", song.ID))
	return song, nil
}

// Delete removes the song. Schedules keep referencing its ID; those
// references are dropped when schedules are resolved.
func (s *SongService) Delete(ctx context.Context, id string) error {
	songs, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Song, 0, len(songs))
	for _, song := range songs {
		if song.ID != id {
			kept = append(kept, song)
		}
	}

	if err := s.store.UpdateData(ctx, store.KeySongs, kept); err != nil {
		return err
	}

	s.logger.Info("Song deleted", zap.String("id", id))
	return nil
}

func normalizeSong(s model.Song) model.Song {
	s.Title = strings.TrimSpace(s.Title)
	s.Artist = strings.TrimSpace(s.Artist)
	s.Key = strings.TrimSpace(s.Key)
	return s
}
