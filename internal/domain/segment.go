package domain

// SegmentStats - счётчики занятости по одному сегменту улицы.
// Recomputed per request from the bay set currently in view, never shared
// across requests.
type SegmentStats struct {
	Total       int   `json:"total"`
	Available   int   `json:"available"`
	Occupied    int   `json:"occupied"`
	Limited     int   `json:"limited"`
	Unknown     int   `json:"unknown"`
	KerbsideIDs []int `json:"kerbsideids"`
}

func (s *SegmentStats) add(status Status, kerbsideID int) {
	s.Total++
	switch status {
	case StatusAvailable:
		s.Available++
	case StatusOccupied:
		s.Occupied++
	case StatusLimited:
		s.Limited++
	default:
		s.Unknown++
	}
	s.KerbsideIDs = append(s.KerbsideIDs, kerbsideID)
}

// BuildSegmentStats groups bays by display address and counts normalized
// statuses per segment. It must be fed the same working set that is later
// iterated for result construction so the per-segment counts stay
// consistent with the reported bays. ID lists follow input iteration order.
func BuildSegmentStats(bays []ParkingBay) map[string]*SegmentStats {
	stats := make(map[string]*SegmentStats)
	for i := range bays {
		bay := &bays[i]
		addr := bay.DisplayAddress()
		segment, ok := stats[addr]
		if !ok {
			segment = &SegmentStats{}
			stats[addr] = segment
		}
		segment.add(bay.NormalizedStatus(), bay.KerbsideID)
	}
	return stats
}
