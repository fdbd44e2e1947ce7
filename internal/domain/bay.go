package domain

import "fmt"

// ParkingBay - одно парковочное место с датчиком занятости.
// Coordinates, segment label and the sensor feed fields are all nullable
// in the source table. Timestamps are opaque strings from the feed and are
// never parsed as dates.
type ParkingBay struct {
	KerbsideID      int      `db:"kerbside_id" json:"kerbsideid"`
	Latitude        *float64 `db:"latitude" json:"latitude"`
	Longitude       *float64 `db:"longitude" json:"longitude"`
	RoadSegment     *string  `db:"road_segment_description" json:"road_segment_description"`
	RawStatus       *string  `db:"status_description" json:"status_description"`
	LastUpdated     *string  `db:"last_updated" json:"last_updated"`
	StatusTimestamp *string  `db:"status_timestamp" json:"status_timestamp"`
}

// HasCoordinates reports whether the bay can participate in spatial math.
// A bay lacking either coordinate is excluded from all spatial operations.
func (b *ParkingBay) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// DisplayAddress returns the segment label, or a synthesized fallback when
// the label is absent.
func (b *ParkingBay) DisplayAddress() string {
	if b.RoadSegment != nil && *b.RoadSegment != "" {
		return *b.RoadSegment
	}
	return fmt.Sprintf("Parking Spot %d", b.KerbsideID)
}

// RawStatusValue returns the free-text sensor status, empty when absent.
func (b *ParkingBay) RawStatusValue() string {
	if b.RawStatus == nil {
		return ""
	}
	return *b.RawStatus
}

// NormalizedStatus derives the bay status from the raw sensor text.
// Never stored, always recomputed.
func (b *ParkingBay) NormalizedStatus() Status {
	return NormalizeStatus(b.RawStatusValue())
}
