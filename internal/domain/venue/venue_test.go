//go:build unit

package venue_test

import (
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHours(t *testing.T) {
	tests := []struct {
		name          string
		opens, closes int
		wantErr       bool
	}{
		{"通常営業", 8 * 60, 23 * 60, false},
		{"深夜0時閉店", 8 * 60, venue.EndOfDay, false},
		{"開店と閉店が同じ", 600, 600, true},
		{"閉店が開店より前", 600, 480, true},
		{"範囲外", -1, 600, true},
		{"翌日にまたがる", 600, venue.EndOfDay + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := venue.NewHours(tt.opens, tt.closes)
			if tt.wantErr {
				assert.ErrorIs(t, err, venue.ErrInvalidHours)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHoursWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	h, err := venue.NewHours(8*60, venue.EndOfDay)
	require.NoError(t, err)

	start, end := h.Window(clock.Date{Year: 2025, Month: time.March, Day: 10}, loc)

	assert.Equal(t, time.Date(2025, time.March, 10, 8, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, loc), end)
}

func TestCourtGranularity(t *testing.T) {
	c := venue.Court{SlotMinutes: 60}
	assert.Equal(t, time.Hour, c.Granularity())

	c.GranularityMinutes = 30
	assert.Equal(t, 30*time.Minute, c.Granularity())
}
