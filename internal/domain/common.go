package domain

// Coordinate - точка в градусах WGS84
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox - прямоугольная зона обслуживания сервиса
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// DefaultCBDBounds covers the Melbourne CBD and its immediate surrounds.
var DefaultCBDBounds = BoundingBox{
	LatMin: -37.89,
	LatMax: -37.75,
	LngMin: 144.90,
	LngMax: 145.01,
}

// Contains reports whether the point lies inside the box. Both axes are
// tested as closed intervals: a point exactly on an edge is inside.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lng >= b.LngMin && lng <= b.LngMax
}

func (b BoundingBox) IsZero() bool {
	return b.LatMin == 0 && b.LatMax == 0 && b.LngMin == 0 && b.LngMax == 0
}
