package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type failingBackend struct {
	MemoryBackend
	err error
}

func (f *failingBackend) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f *failingBackend) Set(context.Context, string, string) error         { return f.err }
func (f *failingBackend) Remove(context.Context, string) error              { return f.err }
func (f *failingBackend) Clear(context.Context) error                       { return f.err }

func TestUpdateData_NeverCreated(t *testing.T) {
	s := New(NewMemoryBackend(), nil)

	err := s.UpdateData(context.Background(), KeySongs, []record{{ID: "a"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
	assert.Contains(t, err.Error(), KeySongs)
}

func TestCreateThenUpdate_StoresLastWrite(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil)

	require.NoError(t, s.CreateData(ctx, KeySongs, []record{{ID: "a", Name: "first"}}))
	require.NoError(t, s.UpdateData(ctx, KeySongs, []record{{ID: "a", Name: "second"}, {ID: "b"}}))

	var got []record
	found, err := s.ReadData(ctx, KeySongs, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []record{{ID: "a", Name: "second"}, {ID: "b"}}, got)
}

func TestReadData_Absent(t *testing.T) {
	s := New(NewMemoryBackend(), nil)

	got := []record{{ID: "untouched"}}
	found, err := s.ReadData(context.Background(), KeySchedules, &got)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []record{{ID: "untouched"}}, got)
}

func TestReadData_CorruptValue(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	require.NoError(t, b.Set(ctx, KeySongs, "{not json"))

	var got []record
	found, err := New(b, nil).ReadData(ctx, KeySongs, &got)

	require.Error(t, err)
	assert.False(t, found)
}

func TestCreateData_SerializationFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := New(NewMemoryBackend(), zap.New(core))

	err := s.CreateData(context.Background(), KeySongs, make(chan int))

	require.Error(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Error saving data", logs.All()[0].Message)

	_, ok, _ := s.Backend().Get(context.Background(), KeySongs)
	assert.False(t, ok, "nothing should be written when encoding fails")
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil)

	require.NoError(t, s.CreateData(ctx, KeySongs, []record{}))
	require.NoError(t, s.CreateData(ctx, KeySchedules, []record{}))

	require.NoError(t, s.DeleteData(ctx, KeySongs))
	var got []record
	found, err := s.ReadData(ctx, KeySongs, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.DeleteData(ctx, "never-existed"))

	require.NoError(t, s.ClearAllData(ctx))
	found, err = s.ReadData(ctx, KeySchedules, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBackendFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	core, logs := observer.New(zap.ErrorLevel)
	s := New(&failingBackend{err: boom}, zap.New(core))

	var got []record
	_, err := s.ReadData(ctx, KeySongs, &got)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, s.CreateData(ctx, KeySongs, []record{}), boom)
	assert.ErrorIs(t, s.UpdateData(ctx, KeySongs, []record{}), boom)
	assert.ErrorIs(t, s.DeleteData(ctx, KeySongs), boom)
	assert.ErrorIs(t, s.ClearAllData(ctx), boom)

	assert.Equal(t, 5, logs.Len())
}
