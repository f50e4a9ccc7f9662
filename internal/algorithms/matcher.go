package algorithms

import (
	"crewlink_backend/internal/repositories"
)

// CoverageMatcher is the default agency-matching implementation: an
// agency matches a craft when its declared coverage contains both the
// trade and the region. Callers must not assume any ordering of the
// returned ids.
type CoverageMatcher struct {
	agencyRepo repositories.AgencyRepository
}

func NewCoverageMatcher(agencyRepo repositories.AgencyRepository) *CoverageMatcher {
	return &CoverageMatcher{agencyRepo: agencyRepo}
}

// MatchTrades returns the ids of active agencies covering the
// (trade, region) pair.
func (m *CoverageMatcher) MatchTrades(tradeID, regionID string) ([]string, error) {
	agencies, err := m.agencyRepo.FindActiveByCoverage(tradeID, regionID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(agencies))
	for _, agency := range agencies {
		ids = append(ids, agency.ID)
	}
	return ids, nil
}
