package dto

// NearbySpotsRequest - параметры поиска ближайших парковочных мест.
// Lat/Lng arrive as raw query strings; the engine owns parsing so that a
// malformed number maps onto INVALID_COORDINATES rather than a generic 400.
type NearbySpotsRequest struct {
	Query string `json:"query"`
	Lat   string `json:"lat"`
	Lng   string `json:"lng"`
	// KeywordFallback opts in to the segment-name substring search when a
	// coordinate search yields nothing.
	KeywordFallback bool `json:"keyword_fallback"`
}

// MarkersRequest - параметры для карточных маркеров
type MarkersRequest struct {
	Lat           string  `json:"lat" validate:"required"`
	Lng           string  `json:"lng" validate:"required"`
	MaxDistanceKm float64 `json:"max_distance" validate:"omitempty,min=0.1,max=10"`
	StatusFilter  string  `json:"status_filter" validate:"omitempty,oneof=Available Occupied Limited Unknown"`
}

// ListSpotsRequest - постраничный просмотр таблицы мест
type ListSpotsRequest struct {
	KerbsideIDs []int `json:"ids" validate:"omitempty,max=500"`
	Limit       int   `json:"limit" validate:"omitempty,min=1,max=500"`
	Offset      int   `json:"offset" validate:"omitempty,min=0"`
}

// SuggestRequest - запрос автодополнения локаций
type SuggestRequest struct {
	Query string `json:"q" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=25"`
}
