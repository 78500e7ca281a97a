package domain

// ProvinceIndex is the static administrative hierarchy:
// province name → district name → sub-district names.
type ProvinceIndex map[string]map[string][]string
