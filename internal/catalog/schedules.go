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

// ErrScheduleNotFound is returned when a schedule ID does not exist
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleService implements the schedule list and editor operations
type ScheduleService struct {
	store  *store.Store
	songs  *SongService
	logger *zap.Logger
}

// NewScheduleService creates a schedule service. songs is used for resolution.
func NewScheduleService(s *store.Store, songs *SongService, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{store: s, songs: songs, logger: logging.OrNop(logger)}
}

// List returns every schedule in stored order
func (s *ScheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	var schedules []model.Schedule
	found, err := s.store.ReadData(ctx, store.KeySchedules, &schedules)
	if err != nil {
		return nil, err
	}
	if !found || schedules == nil {
		return []model.Schedule{}, nil
	}
	return schedules, nil
}

// Get returns one schedule
func (s *ScheduleService) Get(ctx context.Context, id string) (model.Schedule, error) {
	schedules, err := s.List(ctx)
	if err != nil {
		return model.Schedule{}, err
	}
	for _, sc := range schedules {
		if sc.ID == id {
			return sc, nil
		}
	}
	return model.Schedule{}, fmt.Errorf("%w: %s", ErrScheduleNotFound, id)
}

// Add validates input, assigns an ID and appends the schedule
func (s *ScheduleService) Add(ctx context.Context, input model.Schedule) (model.Schedule, error) {
	sc := normalizeSchedule(input)
	if err := sc.Validate(); err != nil {
		return model.Schedule{}, err
	}

	schedules, err := s.List(ctx)
	if err != nil {
		return model.Schedule{}, err
	}

	sc.ID = model.NewID()
	if err := s.store.CreateData(ctx, store.KeySchedules, append(schedules, sc)); err != nil {
		return model.Schedule{}, err
	}

	s.logger.Info("Schedule added", zap.String("id", sc.ID), zap.String("service", sc.ServiceName))
	return sc, nil
}

// Edit replaces the schedule with the same ID
func (s *ScheduleService) Edit(ctx context.Context, input model.Schedule) (model.Schedule, error) {
	sc := normalizeSchedule(input)
	if err := sc.Validate(); err != nil {
		return model.Schedule{}, err
	}

	schedules, err := s.List(ctx)
	if err != nil {
		return model.Schedule{}, err
	}

	updated := make([]model.Schedule, len(schedules))
	for i, existing := range schedules {
		if existing.ID == sc.ID {
			existing.ServiceName = sc.ServiceName
			existing.Songs = sc.Songs
		}
		updated[i] = existing
	}

	if err := s.store.UpdateData(ctx, store.KeySchedules, updated); err != nil {
		return model.Schedule{}, err
	}

	s.logger.Info("Schedule updated", zap.String("id", sc.ID))
	return sc, nil
}

// Delete removes the schedule
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	schedules, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Schedule, 0, len(schedules))
	for _, sc := range schedules {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}

	if err := s.store.UpdateData(ctx, store.KeySchedules, kept); err != nil {
		return err
	}

	s.logger.Info("Schedule deleted", zap.String("id", id))
	return nil
}

// Resolved returns the schedule and its songs in lineup order
func (s *ScheduleService) Resolved(ctx context.Context, id string) (lineup.Entry, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return lineup.Entry{}, err
	}
	songs, err := s.songs.List(ctx)
	if err != nil {
		return lineup.Entry{}, err
	}
	return lineup.Entry{Schedule: sc, Songs: lineup.Resolve(sc, songs)}, nil
}

// Export returns the clipboard text for the schedule
func (s *ScheduleService) Export(ctx context.Context, id string) (string, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	songs, err := s.songs.List(ctx)
	if err != nil {
		return "", err
	}
	return lineup.ExportText(sc, songs), nil
}

// Board returns every schedule with its resolved songs
func (s *ScheduleService) Board(ctx context.Context) ([]lineup.Entry, error) {
	schedules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	songs, err := s.songs.List(ctx)
	if err != nil {
		return nil, err
	}
	return lineup.Board(schedules, songs), nil
}

func normalizeSchedule(sc model.Schedule) model.Schedule {
	sc.ServiceName = strings.TrimSpace(sc.ServiceName)
	songs := make([]string, len(sc.Songs))
	copy(songs, sc.Songs)
	sc.Songs = songs
	return sc
}
