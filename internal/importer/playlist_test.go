package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/model"
	"github.com/ytget/setlist/internal/store"
)

type fakeFetcher struct {
	items      []PlaylistItem
	err        error
	gotID      string
	gotTimeout bool
}

func (f *fakeFetcher) FetchPlaylist(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	f.gotID = playlistID
	_, f.gotTimeout = ctx.Deadline()
	return f.items, f.err
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "playlist page",
			url:      "https://www.youtube.com/playlist?list=PL123",
			expected: "PL123",
		},
		{
			name:     "watch URL with extra params",
			url:      "https://www.youtube.com/watch?v=abc&list=PL456&start_radio=1",
			expected: "PL456",
		},
		{
			name:    "no list parameter",
			url:     "https://www.youtube.com/watch?v=abc",
			wantErr: true,
		},
		{
			name:    "empty list parameter",
			url:     "https://www.youtube.com/playlist?list=&v=1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlaylistURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseVideoTitle(t *testing.T) {
	tests := []struct {
		raw    string
		artist string
		title  string
	}{
		{"Hillsong - Oceans (Official Video)", "Hillsong", "Oceans"},
		{"Chris Tomlin – How Great Is Our God [Lyrics]", "Chris Tomlin", "How Great Is Our God"},
		{"Amazing Grace", UnknownArtist, "Amazing Grace"},
		{"Oceans (Where Feet May Fail)", UnknownArtist, "Oceans (Where Feet May Fail)"},
		{"Bethel Music | Goodness of God (Live)", "Bethel Music", "Goodness of God"},
		{"  Elevation   Worship -  Graves Into Gardens  ", "Elevation Worship", "Graves Into Gardens"},
		{"(Official Audio)", UnknownArtist, ""},
	}

	for _, tt := range tests {
		artist, title := ParseVideoTitle(tt.raw)
		if artist != tt.artist || title != tt.title {
			t.Errorf("ParseVideoTitle(%q) = (%q, %q), expected (%q, %q)", tt.raw, artist, title, tt.artist, tt.title)
		}
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(store.NewMemoryBackend(), nil)
	_, err := c.Songs.Add(ctx, model.Song{Title: "Oceans", Artist: "hillsong", Key: "D"})
	require.NoError(t, err)

	fetcher := &fakeFetcher{items: []PlaylistItem{
		{VideoID: "1", Title: "Hillsong - Oceans (Official Video)"},
		{VideoID: "2", Title: "Chris Tomlin - Holy Forever"},
		{VideoID: "3", Title: "Chris Tomlin - Holy Forever [Lyrics]"},
		{VideoID: "4", Title: "[Official Video]"},
	}}
	imp := New(fetcher, c.Songs, nil)

	res, err := imp.Import(ctx, "https://www.youtube.com/playlist?list=PLx", "G")
	require.NoError(t, err)

	assert.Equal(t, "PLx", fetcher.gotID)
	assert.True(t, fetcher.gotTimeout, "fetch should run with a deadline")
	assert.Equal(t, "PLx", res.PlaylistID)
	require.Len(t, res.Added, 1)
	assert.Equal(t, "Holy Forever", res.Added[0].Title)
	assert.Equal(t, "Chris Tomlin", res.Added[0].Artist)
	assert.Equal(t, "G", res.Added[0].Key)
	assert.Equal(t, 3, res.Skipped)

	songs, err := c.Songs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, songs, 2)
}

func TestImport_Errors(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(store.NewMemoryBackend(), nil)

	imp := New(&fakeFetcher{}, c.Songs, nil)
	_, err := imp.Import(ctx, "https://example.com/video", "C")
	assert.ErrorIs(t, err, ErrInvalidPlaylistURL)

	_, err = imp.Import(ctx, "https://www.youtube.com/playlist?list=PL1", "")
	var verrs model.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	boom := errors.New("network down")
	imp = New(&fakeFetcher{err: boom}, c.Songs, nil)
	imp.SetTimeout(time.Second)
	_, err = imp.Import(ctx, "https://www.youtube.com/playlist?list=PL1", "C")
	assert.ErrorIs(t, err, boom)
}

func TestNew_DefaultFetcher(t *testing.T) {
	imp := New(nil, nil, nil)
	assert.IsType(t, &YTDLPFetcher{}, imp.fetcher)
	assert.Equal(t, DefaultImportTimeout, imp.timeout)
}
