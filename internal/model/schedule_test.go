package model

import (
	"errors"
	"testing"
)

func TestSchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		expected map[string]string
	}{
		{
			name:     "valid schedule",
			schedule: Schedule{ServiceName: "Sunday", Songs: []string{"a"}},
		},
		{
			name:     "missing name",
			schedule: Schedule{Songs: []string{"a"}},
			expected: map[string]string{FieldServiceName: MsgServiceNameRequired},
		},
		{
			name:     "no songs selected",
			schedule: Schedule{ServiceName: "Sunday", Songs: []string{}},
			expected: map[string]string{FieldSongs: MsgSongsRequired},
		},
		{
			name:     "nil songs",
			schedule: Schedule{ServiceName: "Sunday"},
			expected: map[string]string{FieldSongs: MsgSongsRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, expected ValidationErrors", err)
			}
			for field, msg := range tt.expected {
				if got := verrs.Field(field); got != msg {
					t.Errorf("field %s = %q, expected %q", field, got, msg)
				}
			}
		})
	}
}

func TestSchedule_HasSong(t *testing.T) {
	s := Schedule{Songs: []string{"a", "b"}}

	if !s.HasSong("b") {
		t.Error("HasSong(b) = false, expected true")
	}
	if s.HasSong("c") {
		t.Error("HasSong(c) = true, expected false")
	}
}
