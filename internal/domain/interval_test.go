package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := Interval{StartMinutes: 600, EndMinutes: 660} // 10:00-11:00

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{600, 660}, true},
		{"contained", Interval{615, 645}, true},
		{"containing", Interval{570, 690}, true},
		{"overlap left edge", Interval{570, 630}, true},
		{"overlap right edge", Interval{630, 690}, true},
		{"touching before", Interval{540, 600}, false},
		{"touching after", Interval{660, 720}, false},
		{"disjoint before", Interval{480, 540}, false},
		{"disjoint after", Interval{720, 780}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval("09:30", 90)
	require.NoError(t, err)
	assert.Equal(t, Interval{StartMinutes: 570, EndMinutes: 660}, iv)
	assert.Equal(t, "09:30", iv.Start().String())

	_, err = NewInterval("9:30", 90)
	assert.Error(t, err)
}

func TestIsFree(t *testing.T) {
	booked := []Interval{
		{StartMinutes: 600, EndMinutes: 660},
		{StartMinutes: 720, EndMinutes: 750},
	}

	assert.True(t, IsFree(Interval{540, 600}, booked), "back-to-back before a booking is free")
	assert.True(t, IsFree(Interval{660, 720}, booked), "gap between bookings is free")
	assert.False(t, IsFree(Interval{630, 690}, booked))
	assert.False(t, IsFree(Interval{590, 760}, booked), "spanning both bookings")
	assert.True(t, IsFree(Interval{600, 660}, nil), "no bookings means always free")
}
