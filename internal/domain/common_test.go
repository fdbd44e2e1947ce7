package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{LatMin: -37.89, LatMax: -37.75, LngMin: 144.90, LngMax: 145.01}

	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"cbd center", -37.815, 144.965, true},
		{"outside south east", -38.5, 145.5, false},
		{"exactly on lat_min", -37.89, 144.95, true},
		{"exactly on lat_max", -37.75, 144.95, true},
		{"exactly on lng_min", -37.80, 144.90, true},
		{"exactly on lng_max", -37.80, 145.01, true},
		{"corner point", -37.89, 145.01, true},
		{"just below lat_min", -37.8901, 144.95, false},
		{"just above lng_max", -37.80, 145.0101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.lat, tt.lng))
		})
	}
}

func TestBoundingBoxIsZero(t *testing.T) {
	assert.True(t, BoundingBox{}.IsZero())
	assert.False(t, DefaultCBDBounds.IsZero())
}

func TestDefaultCBDBounds(t *testing.T) {
	// The default service area must cover the CBD landmarks used for
	// autocomplete.
	for _, lm := range CBDLandmarks {
		assert.True(t, DefaultCBDBounds.Contains(lm.Lat, lm.Lng), lm.Name)
	}
}
