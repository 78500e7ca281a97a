// Package geodata bundles the static Thai administrative hierarchy
// (province → district → sub-districts) and loads it once at startup.
package geodata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/thaigeo/address-api/internal/core/domain"
)

//go:embed thai_provinces.json
var rawProvinces []byte

// Load decodes the bundled dataset into a ProvinceIndex.
func Load() (domain.ProvinceIndex, error) {
	var index domain.ProvinceIndex
	if err := json.Unmarshal(rawProvinces, &index); err != nil {
		return nil, fmt.Errorf("decode province dataset: %w", err)
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("province dataset is empty")
	}
	return index, nil
}
