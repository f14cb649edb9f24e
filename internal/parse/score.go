package parse

import "estate_ingest/internal/domain"

// Completeness score weights. Price carries the most weight: a listing
// without a price is useless to readers regardless of what else parsed.
const (
	scoreRooms       = 2
	scoreFloor       = 1
	scoreTotalFloors = 1
	scoreArea        = 1
	scorePrice       = 3
	scoreDistrict    = 2
	scoreMetro       = 1
	scorePhones      = 1
	scoreDescription = 1

	// MaxParseScore is the sum of all weights.
	MaxParseScore = scoreRooms + scoreFloor + scoreTotalFloors + scoreArea +
		scorePrice + scoreDistrict + scoreMetro + scorePhones + scoreDescription

	reviewThreshold = 5
)

// Score fills ParseScore and NeedsReview on an extracted listing. The flag
// is advisory metadata for human review, not a gate: low-score listings
// are still stored.
func Score(l *domain.Listing) {
	s := 0
	if l.Rooms != nil {
		s += scoreRooms
	}
	if l.Floor != nil {
		s += scoreFloor
	}
	if l.TotalFloors != nil {
		s += scoreTotalFloors
	}
	if l.AreaM2 != nil {
		s += scoreArea
	}
	if l.Price != nil {
		s += scorePrice
	}
	if l.DistrictRaw != "" {
		s += scoreDistrict
	}
	if l.MetroRaw != "" {
		s += scoreMetro
	}
	if len(l.Phones) > 0 {
		s += scorePhones
	}
	if l.DescriptionClean != "" {
		s += scoreDescription
	}

	l.ParseScore = s
	l.NeedsReview = s < reviewThreshold || l.DealType == domain.DealUnknown
}
