package service

import (
	"sort"

	"github.com/thaigeo/address-api/internal/core/domain"
)

// LocationService answers lookups over the administrative hierarchy loaded
// at startup. The index is read-only after construction, so lookups are
// safe from any number of goroutines.
type LocationService struct {
	index domain.ProvinceIndex
}

func NewLocationService(index domain.ProvinceIndex) *LocationService {
	return &LocationService{index: index}
}

func (s *LocationService) All() domain.ProvinceIndex {
	return s.index
}

func (s *LocationService) Provinces() []string {
	names := make([]string, 0, len(s.index))
	for p := range s.index {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

// Districts returns the district names of a province, empty for an unknown
// province. Unknown keys are not an error here.
func (s *LocationService) Districts(province string) []string {
	districts := s.index[province]
	names := make([]string, 0, len(districts))
	for d := range districts {
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}

func (s *LocationService) SubDistricts(province, district string) []string {
	subs := s.index[province][district]
	if subs == nil {
		return []string{}
	}
	return subs
}
