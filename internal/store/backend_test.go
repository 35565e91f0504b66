package store

import (
	"context"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkBackend runs the behaviour every backend must share
func checkBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := b.Get(ctx, KeySongs)
	require.NoError(t, err)
	assert.False(t, ok, "fresh backend should not contain songs")

	require.NoError(t, b.Set(ctx, KeySongs, `[{"id":"a"}]`))
	v, ok, err := b.Get(ctx, KeySongs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	require.NoError(t, b.Set(ctx, KeySongs, `[]`))
	v, _, err = b.Get(ctx, KeySongs)
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, b.Set(ctx, KeySchedules, `[]`))
	require.NoError(t, b.Remove(ctx, KeySongs))
	_, ok, err = b.Get(ctx, KeySongs)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Remove(ctx, "missing"))

	require.NoError(t, b.Set(ctx, KeySongs, `[]`))
	require.NoError(t, b.Clear(ctx))
	for _, k := range []string{KeySongs, KeySchedules} {
		_, ok, err = b.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, "key %s should be gone after Clear", k)
	}

	s := New(b, nil)
	require.ErrorIs(t, s.UpdateData(ctx, KeySongs, []string{"x"}), ErrNotFound)
	require.NoError(t, s.CreateData(ctx, KeySongs, []string{"x"}))
	require.NoError(t, s.UpdateData(ctx, KeySongs, []string{"y"}))
	var got []string
	found, err := s.ReadData(ctx, KeySongs, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"y"}, got)
}

func TestMemoryBackend(t *testing.T) {
	checkBackend(t, NewMemoryBackend())
}

func TestPreferencesBackend(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	checkBackend(t, NewPreferencesBackend(app.Preferences(), ""))
}

func TestPreferencesBackend_LeavesOtherPreferences(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	prefs := app.Preferences()
	prefs.SetString("app_language", "pt")

	b := NewPreferencesBackend(prefs, "")
	ctx := context.Background()
	require.NoError(t, b.Set(ctx, KeySongs, `[]`))
	assert.Equal(t, `[]`, prefs.String(DefaultPreferencesPrefix+KeySongs))

	require.NoError(t, b.Clear(ctx))
	assert.Equal(t, "pt", prefs.String("app_language"))
}

func TestRedisBackend(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	b := NewRedisBackend(client, "test:setlist:")
	defer b.Close()

	checkBackend(t, b)
}

func TestRedisBackend_ClearKeepsForeignKeys(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Set("other:key", "keep"))

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	b := NewRedisBackend(client, "")
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, b.Set(ctx, KeySongs, `[]`))
	assert.True(t, m.Exists(DefaultRedisPrefix+KeySongs))

	require.NoError(t, b.Clear(ctx))
	assert.False(t, m.Exists(DefaultRedisPrefix+KeySongs))
	assert.True(t, m.Exists("other:key"))
}

func TestSQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "setlist.db")
	b, err := OpenSQLite(path)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, path, b.Path())
	checkBackend(t, b)
}

func TestSQLiteBackend_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setlist.db")
	ctx := context.Background()

	b, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, KeySongs, `[{"id":"a"}]`))
	require.NoError(t, b.Close())

	b, err = OpenSQLite(path)
	require.NoError(t, err)
	defer b.Close()

	v, ok, err := b.Get(ctx, KeySongs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, closer, err := Open(ctx, Options{Kind: KindMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)
	assert.NoError(t, closer.Close())

	b, closer, err = Open(ctx, Options{Kind: KindSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)
	assert.NoError(t, closer.Close())

	_, _, err = Open(ctx, Options{Kind: KindPreferences})
	assert.Error(t, err)

	_, _, err = Open(ctx, Options{Kind: KindRedis})
	assert.Error(t, err)

	_, _, err = Open(ctx, Options{Kind: "bolt"})
	assert.Error(t, err)
}

func TestOpen_Redis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	b, closer, err := Open(context.Background(), Options{Kind: KindRedis, RedisURL: "redis://" + m.Addr()})
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &RedisBackend{}, b)
}
