package dto

import (
	"encoding/json"

	"github.com/parking-microservice/internal/domain"
)

// unknownDistanceSort is the sort stand-in for an unknown distance, so
// keyword-only matches always rank after any measured distance.
const unknownDistanceSort = 999.0

// Distance - расстояние до места; для поиска по названию сегмента точки
// отсчёта нет, и в JSON уходит литерал "?".
type Distance struct {
	Known bool
	Km    float64
}

func KnownDistance(km float64) Distance {
	return Distance{Known: true, Km: km}
}

func UnknownDistance() Distance {
	return Distance{}
}

func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Known {
		return []byte(`"?"`), nil
	}
	return json.Marshal(d.Km)
}

// SortValue returns the ordering key; unknown sorts as 999.
func (d Distance) SortValue() float64 {
	if !d.Known {
		return unknownDistanceSort
	}
	return d.Km
}

// StatusSummary - количество мест каждого статуса в итоговой выборке
type StatusSummary struct {
	Available int `json:"Available"`
	Occupied  int `json:"Occupied"`
	Limited   int `json:"Limited"`
	Unknown   int `json:"Unknown"`
}

// Add увеличивает счётчик соответствующего статуса
func (s *StatusSummary) Add(status domain.Status) {
	switch status {
	case domain.StatusAvailable:
		s.Available++
	case domain.StatusOccupied:
		s.Occupied++
	case domain.StatusLimited:
		s.Limited++
	default:
		s.Unknown++
	}
}

// SegmentCounts - сводка по сегменту улицы
type SegmentCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Limited   int `json:"limited"`
	Unknown   int `json:"unknown"`
}

// SpotResult - одно парковочное место в результатах поиска
type SpotResult struct {
	KerbsideID         int           `json:"kerbsideid"`
	Address            string        `json:"address"`
	Lat                float64       `json:"lat"`
	Lng                float64       `json:"lng"`
	Status             domain.Status `json:"status"`
	RawStatus          string        `json:"raw_status"`
	Distance           Distance      `json:"distance"`
	LastUpdated        string        `json:"last_updated"`
	StatusTimestamp    string        `json:"status_timestamp"`
	SegmentCounts      SegmentCounts `json:"segment_counts"`
	SegmentKerbsideIDs []int         `json:"segment_kerbsideids"`
}

// NearbySpotsResponse - итоговый ответ поиска ближайших мест
type NearbySpotsResponse struct {
	TotalCount     int                `json:"total_count"`
	SearchLocation *domain.Coordinate `json:"search_location"`
	Query          string             `json:"query"`
	InCBD          *bool              `json:"in_cbd"`
	CBDBoundaries  domain.BoundingBox `json:"cbd_boundaries"`
	StatusSummary  StatusSummary      `json:"status_summary"`
	Results        []SpotResult       `json:"results"`
	Success        bool               `json:"success"`
	Message        string             `json:"message"`
}

// SpotRecord - плоское представление одного места (статус и листинг)
type SpotRecord struct {
	KerbsideID      int           `json:"kerbsideid"`
	Address         string        `json:"address"`
	Lat             *float64      `json:"lat"`
	Lng             *float64      `json:"lng"`
	Status          domain.Status `json:"status"`
	RawStatus       string        `json:"raw_status"`
	LastUpdated     string        `json:"last_updated"`
	StatusTimestamp string        `json:"status_timestamp"`
}

// ListSpotsResponse - страница таблицы мест
type ListSpotsResponse struct {
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
	Results    []SpotRecord `json:"results"`
	Success    bool         `json:"success"`
}

// AvailableSpotsResponse - все свободные места в зоне обслуживания
type AvailableSpotsResponse struct {
	TotalCount    int                `json:"total_count"`
	CBDBoundaries domain.BoundingBox `json:"cbd_boundaries"`
	Results       []SpotResult       `json:"results"`
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
}

// MarkerResult - маркер для карты с подсказками цвета и иконки
type MarkerResult struct {
	KerbsideID int           `json:"kerbsideid"`
	Address    string        `json:"address"`
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Status     domain.Status `json:"status"`
	Distance   Distance      `json:"distance"`
	Color      string        `json:"color"`
	Icon       string        `json:"icon"`
}

// MarkersResponse - ответ списка маркеров
type MarkersResponse struct {
	TotalCount     int                `json:"total_count"`
	SearchLocation *domain.Coordinate `json:"search_location"`
	MaxDistanceKm  float64            `json:"max_distance"`
	StatusFilter   string             `json:"status_filter,omitempty"`
	Results        []MarkerResult     `json:"results"`
	Success        bool               `json:"success"`
}

// Suggestion - один вариант автодополнения
type Suggestion struct {
	Value string   `json:"value"`
	Type  string   `json:"type"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

// SuggestionsResponse - ответ автодополнения локаций
type SuggestionsResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
	Total       int          `json:"total"`
	Success     bool         `json:"success"`
}
