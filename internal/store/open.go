package store

import (
	"context"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
)

// Kind names a backend
type Kind string

const (
	KindMemory      Kind = "memory"
	KindPreferences Kind = "preferences"
	KindRedis       Kind = "redis"
	KindSQLite      Kind = "sqlite"
)

// Kinds lists the supported backends
func Kinds() []Kind {
	return []Kind{KindMemory, KindPreferences, KindRedis, KindSQLite}
}

// Options selects and configures a backend
type Options struct {
	Kind Kind

	// Preferences is required for KindPreferences
	Preferences       fyne.Preferences
	PreferencesPrefix string

	SQLitePath string

	RedisURL    string
	RedisPrefix string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the backend described by opts. The returned closer releases
// connections held by the backend and is always non-nil on success.
func Open(ctx context.Context, opts Options) (Backend, io.Closer, error) {
	switch opts.Kind {
	case KindMemory:
		return NewMemoryBackend(), nopCloser{}, nil

	case KindPreferences:
		if opts.Preferences == nil {
			return nil, nil, fmt.Errorf("preferences backend requires app preferences")
		}
		return NewPreferencesBackend(opts.Preferences, opts.PreferencesPrefix), nopCloser{}, nil

	case KindSQLite:
		if opts.SQLitePath == "" {
			return nil, nil, fmt.Errorf("sqlite backend requires a database path")
		}
		b, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil

	case KindRedis:
		if opts.RedisURL == "" {
			return nil, nil, fmt.Errorf("redis backend requires a redis url")
		}
		client, err := OpenRedis(ctx, opts.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		b := NewRedisBackend(client, opts.RedisPrefix)
		return b, b, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", opts.Kind)
	}
}
