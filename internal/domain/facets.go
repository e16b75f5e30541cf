package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AvailableSizes returns the distinct variant sizes in ascending numeric
// order. 42 and 42.0 count as the same size.
func AvailableSizes(variants []Variant) []decimal.Decimal {
	sizes := make([]decimal.Decimal, 0, len(variants))
	for _, v := range variants {
		dup := false
		for _, s := range sizes {
			if s.Equal(v.Size) {
				dup = true
				break
			}
		}
		if !dup {
			sizes = append(sizes, v.Size)
		}
	}
	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].LessThan(sizes[j])
	})
	return sizes
}

// AvailableColors returns the distinct non-empty variant colors in order of
// first appearance.
func AvailableColors(variants []Variant) []string {
	seen := make(map[string]struct{}, len(variants))
	colors := make([]string, 0, len(variants))
	for _, v := range variants {
		if v.Color == nil || *v.Color == "" {
			continue
		}
		if _, ok := seen[*v.Color]; ok {
			continue
		}
		seen[*v.Color] = struct{}{}
		colors = append(colors, *v.Color)
	}
	return colors
}
