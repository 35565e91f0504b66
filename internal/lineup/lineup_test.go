package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/setlist/internal/model"
)

func catalog() []model.Song {
	return []model.Song{
		{ID: "a", Title: "Amazing Grace", Artist: "Unknown", Key: "C"},
		{ID: "c", Title: "Cornerstone", Artist: "Hillsong", Key: "D"},
		{ID: "b2", Title: "blessed Assurance", Artist: "Fanny Crosby", Key: "G"},
	}
}

func TestResolve_DropsDanglingIDs(t *testing.T) {
	songs := []model.Song{
		{ID: "a", Title: "A"},
		{ID: "c", Title: "C"},
	}
	schedule := model.Schedule{ServiceName: "Sunday", Songs: []string{"a", "b"}}

	got := Resolve(schedule, songs)

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestResolve_KeepsScheduleOrder(t *testing.T) {
	schedule := model.Schedule{Songs: []string{"c", "missing", "a", "c"}}

	got := Resolve(schedule, catalog())

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"c", "a", "c"}, ids)
}

func TestResolve_Empty(t *testing.T) {
	got := Resolve(model.Schedule{Songs: []string{}}, catalog())
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got = Resolve(model.Schedule{Songs: []string{"a"}}, nil)
	assert.Empty(t, got)
}

func TestExportText(t *testing.T) {
	tests := []struct {
		name     string
		schedule model.Schedule
		songs    []model.Song
		expected string
	}{
		{
			name:     "single song",
			schedule: model.Schedule{ServiceName: "Sunday", Songs: []string{"x"}},
			songs:    []model.Song{{ID: "x", Key: "C", Title: "Amazing Grace", Artist: "Unknown"}},
			expected: "Sunday\n(C) Amazing Grace - Unknown\n",
		},
		{
			name:     "no resolvable songs",
			schedule: model.Schedule{ServiceName: "Vespers", Songs: []string{"gone"}},
			songs:    catalog(),
			expected: "Vespers\n",
		},
		{
			name:     "multiple songs in order",
			schedule: model.Schedule{ServiceName: "Easter", Songs: []string{"c", "a"}},
			songs:    catalog(),
			expected: "Easter\n(D) Cornerstone - Hillsong\n(C) Amazing Grace - Unknown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExportText(tt.schedule, tt.songs))
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "empty term sorts all by title", term: "", expected: []string{"a", "b2", "c"}},
		{name: "title match ignores case", term: "GRACE", expected: []string{"a"}},
		{name: "artist match", term: "hill", expected: []string{"c"}},
		{name: "title or artist", term: "cro", expected: []string{"b2"}},
		{name: "matches several", term: "s", expected: []string{"b2", "c"}},
		{name: "no match", term: "zzz", expected: []string{}},
		{name: "space only matches names with a space", term: " ", expected: []string{"a", "b2"}},
		{name: "leading space is kept", term: " grace", expected: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(catalog(), tt.term)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilter_LeadingSpaceNeedsWordBreak(t *testing.T) {
	songs := []model.Song{
		{ID: "g1", Title: "Gracefully", Artist: "Unknown", Key: "A"},
		{ID: "g2", Title: "Amazing Grace", Artist: "Unknown", Key: "C"},
	}

	got := Filter(songs, " grace")

	require.Len(t, got, 1)
	assert.Equal(t, "g2", got[0].ID)
}

func TestSortByTitle(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		expected []string
	}{
		{
			name:     "ignores case",
			titles:   []string{"cornerstone", "Amazing Grace", "blessed"},
			expected: []string{"Amazing Grace", "blessed", "cornerstone"},
		},
		{
			name:     "accented letters sort with their base letter",
			titles:   []string{"Zion", "Ávila", "Amazing Grace"},
			expected: []string{"Amazing Grace", "Ávila", "Zion"},
		},
		{
			name:     "case-only difference is stable by bytes",
			titles:   []string{"oceans", "Oceans"},
			expected: []string{"Oceans", "oceans"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs := make([]model.Song, 0, len(tt.titles))
			for _, title := range tt.titles {
				songs = append(songs, model.Song{ID: title, Title: title})
			}

			SortByTitle(songs)

			got := make([]string, 0, len(songs))
			for _, s := range songs {
				got = append(got, s.Title)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	songs := catalog()
	_ = Filter(songs, "")
	assert.Equal(t, catalog(), songs)
}

func TestToggle(t *testing.T) {
	sel := Toggle(nil, "a")
	assert.Equal(t, []string{"a"}, sel)

	sel = Toggle(sel, "b")
	assert.Equal(t, []string{"a", "b"}, sel)

	sel = Toggle(sel, "a")
	assert.Equal(t, []string{"b"}, sel)

	sel = Toggle(sel, "a")
	assert.Equal(t, []string{"b", "a"}, sel)
}

func TestBoard(t *testing.T) {
	schedules := []model.Schedule{
		{ID: "s1", ServiceName: "Sunday", Songs: []string{"a", "gone"}},
		{ID: "s2", ServiceName: "Friday", Songs: []string{}},
	}

	board := Board(schedules, catalog())

	require.Len(t, board, 2)
	assert.Equal(t, "s1", board[0].Schedule.ID)
	require.Len(t, board[0].Songs, 1)
	assert.Equal(t, "a", board[0].Songs[0].ID)
	assert.Empty(t, board[1].Songs)
}
