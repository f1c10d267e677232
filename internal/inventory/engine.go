// Package inventory implements the storefront's vehicle filtering, searching
// and sorting. It is pure: no I/O, and the input list is never mutated.
package inventory

import (
	"sort"

	"voltdrive/internal/models"
)

// Apply narrows the catalog snapshot to the displayed subset. Filters are
// AND-combined, the search query runs over the filtered set, and the sort is
// applied last. An empty input yields an empty, non-nil result.
func Apply(vehicles []models.Vehicle, f Filters, key SortKey, query string) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		if f.keeps(v) && matchesQuery(v, query) {
			out = append(out, vehicles[i])
		}
	}
	sortVehicles(out, key)
	return out
}

// Metadata lists the distinct values present in the catalog, for populating
// the storefront's filter dropdowns.
type Metadata struct {
	Makes       []string `json:"makes"`
	Models      []string `json:"models"`
	Colors      []string `json:"colors"`
	Years       []int    `json:"years"`
	Drivetrains []string `json:"drivetrains"`
}

// CollectMetadata scans the catalog once and returns sorted distinct values.
// Years are descending (newest first), everything else alphabetical.
func CollectMetadata(vehicles []models.Vehicle) Metadata {
	makes := map[string]struct{}{}
	modelNames := map[string]struct{}{}
	colors := map[string]struct{}{}
	years := map[int]struct{}{}
	drivetrains := map[string]struct{}{}

	for i := range vehicles {
		v := &vehicles[i]
		makes[v.Make] = struct{}{}
		modelNames[v.Model] = struct{}{}
		years[v.Year] = struct{}{}
		if v.Drivetrain != "" {
			drivetrains[string(v.Drivetrain)] = struct{}{}
		}
		for _, c := range v.Colors {
			colors[c.Name] = struct{}{}
		}
	}

	meta := Metadata{
		Makes:       sortedKeys(makes),
		Models:      sortedKeys(modelNames),
		Colors:      sortedKeys(colors),
		Drivetrains: sortedKeys(drivetrains),
		Years:       make([]int, 0, len(years)),
	}
	for y := range years {
		meta.Years = append(meta.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(meta.Years)))
	return meta
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
