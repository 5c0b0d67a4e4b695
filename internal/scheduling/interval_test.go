package scheduling

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"disjoint", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
		{"touching", at(8, 0), at(9, 0), at(9, 0), at(10, 0), false},
		{"partial", at(8, 0), at(9, 0), at(8, 30), at(9, 30), true},
		{"nested", at(8, 0), at(10, 0), at(8, 30), at(9, 0), true},
		{"equal", at(8, 0), at(9, 0), at(8, 0), at(9, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestTile(t *testing.T) {
	t.Run("exact fit", func(t *testing.T) {
		got := slices.Collect(Tile(at(8, 0), at(9, 0), 30*time.Minute))
		assert.Equal(t, []time.Time{at(8, 0), at(8, 30)}, got)
	})

	t.Run("remainder is dropped", func(t *testing.T) {
		got := slices.Collect(Tile(at(8, 0), at(8, 50), 20*time.Minute))
		assert.Equal(t, []time.Time{at(8, 0), at(8, 20)}, got)
	})

	t.Run("step equals window", func(t *testing.T) {
		got := slices.Collect(Tile(at(8, 0), at(9, 0), time.Hour))
		assert.Equal(t, []time.Time{at(8, 0)}, got)
	})

	t.Run("step larger than window", func(t *testing.T) {
		assert.Empty(t, slices.Collect(Tile(at(8, 0), at(9, 0), 61*time.Minute)))
	})

	t.Run("non-positive step", func(t *testing.T) {
		assert.Empty(t, slices.Collect(Tile(at(8, 0), at(9, 0), 0)))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := Tile(at(8, 0), at(9, 0), 15*time.Minute)
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []time.Time
		for ts := range Tile(at(8, 0), at(10, 0), 15*time.Minute) {
			got = append(got, ts)
			if len(got) == 2 {
				break
			}
		}
		assert.Len(t, got, 2)
	})
}
