package services

import (
	"math"
	"sort"

	"github.com/KingAsh2/RapidReps/internal/models"
)

const (
	earthRadiusMiles    = 3959.0
	inPersonRadiusMiles = 15.0
	virtualRadiusMiles  = 20.0
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Haversine returns the great-circle distance between two points in miles.
func Haversine(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// MatchTrainers classifies each candidate against the searcher's location and
// returns the ordered result: in-person matches first (nearest first), then
// virtual matches (nearest first). Candidates that fit neither bucket are
// dropped; this never fails.
//
// A candidate without coordinates (or when the searcher has none) can only
// match virtually, and only when the searcher wants virtual and the candidate
// has virtual training switched on. Missing distances sort after real ones.
func MatchTrainers(searcher *Coordinates, candidates []models.TrainerProfile, wantsVirtual bool) []models.TrainerMatch {
	inPerson := make([]models.TrainerMatch, 0)
	virtual := make([]models.TrainerMatch, 0)

	for _, candidate := range candidates {
		var distance *float64
		if searcher != nil && candidate.Latitude != nil && candidate.Longitude != nil {
			d := Haversine(*searcher, Coordinates{
				Latitude:  *candidate.Latitude,
				Longitude: *candidate.Longitude,
			})
			distance = &d
		}

		switch {
		case distance != nil && candidate.OffersInPerson && *distance <= inPersonRadiusMiles:
			inPerson = append(inPerson, models.TrainerMatch{
				TrainerProfile: candidate,
				DistanceMiles:  distance,
				MatchType:      models.MatchTypeInPerson,
			})
		case distance != nil && wantsVirtual && candidate.IsVirtualTrainingAvailable && *distance <= virtualRadiusMiles:
			virtual = append(virtual, models.TrainerMatch{
				TrainerProfile: candidate,
				DistanceMiles:  distance,
				MatchType:      models.MatchTypeVirtual,
			})
		case distance == nil && wantsVirtual && candidate.IsVirtualTrainingAvailable:
			virtual = append(virtual, models.TrainerMatch{
				TrainerProfile: candidate,
				MatchType:      models.MatchTypeVirtual,
			})
		}
	}

	sortByDistance(inPerson)
	sortByDistance(virtual)
	return append(inPerson, virtual...)
}

func sortByDistance(matches []models.TrainerMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matchDistance(matches[i]) < matchDistance(matches[j])
	})
}

func matchDistance(m models.TrainerMatch) float64 {
	if m.DistanceMiles == nil {
		return math.Inf(1)
	}
	return *m.DistanceMiles
}
