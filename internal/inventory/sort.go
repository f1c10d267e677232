package inventory

import (
	"sort"

	"voltdrive/internal/models"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortRangeHigh SortKey = "range-high"
	SortNewest    SortKey = "newest"
)

// ParseSortKey maps a request parameter to a sort key, defaulting to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortRangeHigh:
		return SortRangeHigh
	case SortNewest:
		return SortNewest
	default:
		return SortFeatured
	}
}

// sortVehicles orders the working set in place. Every ordering is stable:
// ties keep the catalog's original relative order.
func sortVehicles(vehicles []models.Vehicle, key SortKey) {
	switch key {
	case SortRangeHigh:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return ParseLeadingInt(vehicles[i].Specs.Range) > ParseLeadingInt(vehicles[j].Specs.Range)
		})
	case SortNewest:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Year > vehicles[j].Year
		})
	default:
		// Featured is a stable partition, not a comparison over any field pair.
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Featured && !vehicles[j].Featured
		})
	}
}
