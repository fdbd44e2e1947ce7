package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func bay(id int, segment, status string) ParkingBay {
	b := ParkingBay{KerbsideID: id}
	if segment != "" {
		b.RoadSegment = strPtr(segment)
	}
	if status != "" {
		b.RawStatus = strPtr(status)
	}
	return b
}

func TestBuildSegmentStats(t *testing.T) {
	bays := []ParkingBay{
		bay(1, "Collins Street", "Unoccupied"),
		bay(2, "Collins Street", "Present"),
		bay(3, "Collins Street", "Loading Zone"),
		bay(4, "Bourke Street", "mystery"),
		bay(5, "", "Available"),
	}

	stats := BuildSegmentStats(bays)

	require.Len(t, stats, 3)

	collins := stats["Collins Street"]
	require.NotNil(t, collins)
	assert.Equal(t, 3, collins.Total)
	assert.Equal(t, 1, collins.Available)
	assert.Equal(t, 1, collins.Occupied)
	assert.Equal(t, 1, collins.Limited)
	assert.Equal(t, 0, collins.Unknown)
	assert.Equal(t, []int{1, 2, 3}, collins.KerbsideIDs)

	bourke := stats["Bourke Street"]
	require.NotNil(t, bourke)
	assert.Equal(t, 1, bourke.Total)
	assert.Equal(t, 1, bourke.Unknown)

	// Bay without a segment label gets the synthesized address.
	fallback := stats["Parking Spot 5"]
	require.NotNil(t, fallback)
	assert.Equal(t, 1, fallback.Total)
	assert.Equal(t, 1, fallback.Available)
}

func TestBuildSegmentStats_Invariants(t *testing.T) {
	bays := []ParkingBay{
		bay(10, "King Street", "Available"),
		bay(11, "King Street", "Occupied"),
		bay(12, "Queen Street", ""),
		bay(13, "King Street", "Permit"),
		bay(14, "Queen Street", "weird value"),
	}

	stats := BuildSegmentStats(bays)

	total := 0
	for _, s := range stats {
		// Per-status counters always sum to the segment total.
		assert.Equal(t, s.Total, s.Available+s.Occupied+s.Limited+s.Unknown)
		assert.Len(t, s.KerbsideIDs, s.Total)
		total += s.Total
	}
	assert.Equal(t, len(bays), total)
}

func TestBuildSegmentStats_IDOrderFollowsInput(t *testing.T) {
	bays := []ParkingBay{
		bay(30, "Spencer Street", "Available"),
		bay(7, "Spencer Street", "Occupied"),
		bay(19, "Spencer Street", "Available"),
	}

	stats := BuildSegmentStats(bays)
	assert.Equal(t, []int{30, 7, 19}, stats["Spencer Street"].KerbsideIDs)
}

func TestBuildSegmentStats_Empty(t *testing.T) {
	stats := BuildSegmentStats(nil)
	assert.Empty(t, stats)
}

func TestParkingBayHelpers(t *testing.T) {
	lat, lng := -37.81, 144.96

	t.Run("has coordinates", func(t *testing.T) {
		b := ParkingBay{KerbsideID: 1, Latitude: &lat, Longitude: &lng}
		assert.True(t, b.HasCoordinates())

		b.Longitude = nil
		assert.False(t, b.HasCoordinates())
	})

	t.Run("display address fallback", func(t *testing.T) {
		b := ParkingBay{KerbsideID: 42}
		assert.Equal(t, "Parking Spot 42", b.DisplayAddress())

		b.RoadSegment = strPtr("Lonsdale Street between King and William")
		assert.Equal(t, "Lonsdale Street between King and William", b.DisplayAddress())
	})

	t.Run("normalized status from nil", func(t *testing.T) {
		b := ParkingBay{KerbsideID: 1}
		assert.Equal(t, StatusUnknown, b.NormalizedStatus())
		assert.Equal(t, "", b.RawStatusValue())
	})
}
