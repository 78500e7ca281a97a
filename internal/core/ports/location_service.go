package ports

import "github.com/thaigeo/address-api/internal/core/domain"

// LocationService exposes read-only lookups over the administrative
// hierarchy. Unknown keys yield empty results, never errors.
type LocationService interface {
	All() domain.ProvinceIndex
	Provinces() []string
	Districts(province string) []string
	SubDistricts(province, district string) []string
}
