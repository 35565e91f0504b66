// Package catalog holds the song and schedule operations behind the screens.
// Every mutation reads the whole collection, changes it in memory and writes
// the whole collection back. Two mutations running at the same time can lose
// one of the writes; the app only ever runs one at a time.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/model"
	"github.com/ytget/setlist/internal/store"
)

// Catalog bundles the song and schedule services over one store
type Catalog struct {
	Store     *store.Store
	Songs     *SongService
	Schedules *ScheduleService
}

// New wires both services over backend
func New(backend store.Backend, logger *zap.Logger) *Catalog {
	s := store.New(backend, logger)
	songs := NewSongService(s, logger)
	return &Catalog{
		Store:     s,
		Songs:     songs,
		Schedules: NewScheduleService(s, songs, logger),
	}
}

// Snapshot is the full catalog content, used for backups
type Snapshot struct {
	Songs     []model.Song     `json:"songs" yaml:"songs"`
	Schedules []model.Schedule `json:"schedules" yaml:"schedules"`
}

// Snapshot reads both collections
func (c *Catalog) Snapshot(ctx context.Context) (Snapshot, error) {
	songs, err := c.Songs.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	schedules, err := c.Schedules.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Songs: songs, Schedules: schedules}, nil
}

// Restore replaces both collections with the snapshot content
func (c *Catalog) Restore(ctx context.Context, snap Snapshot) error {
	for _, s := range snap.Songs {
		if s.ID == "" {
			return fmt.Errorf("song %q has no id", s.Title)
		}
	}
	for _, sc := range snap.Schedules {
		if sc.ID == "" {
			return fmt.Errorf("schedule %q has no id", sc.ServiceName)
		}
	}

	songs := snap.Songs
	if songs == nil {
		songs = []model.Song{}
	}
	schedules := snap.Schedules
	if schedules == nil {
		schedules = []model.Schedule{}
	}

	if err := c.Store.CreateData(ctx, store.KeySongs, songs); err != nil {
		return err
	}
	return c.Store.CreateData(ctx, store.KeySchedules, schedules)
}

// Clear removes every stored collection
func (c *Catalog) Clear(ctx context.Context) error {
	return c.Store.ClearAllData(ctx)
}
