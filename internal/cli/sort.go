package cli

import (
	"sort"
	"strings"
)

// SortOrder represents the available row orders of a summary table
type SortOrder string

const (
	SortByKey   SortOrder = "key"
	SortByCount SortOrder = "count"
)

// sortCounts sorts summary rows in place
func sortCounts(counts []Count, order SortOrder) {
	switch order {
	case SortByKey:
		sort.SliceStable(counts, func(i, j int) bool {
			return compareByKey(counts[i], counts[j])
		})
	case SortByCount:
		sort.SliceStable(counts, func(i, j int) bool {
			if counts[i].Sessions != counts[j].Sessions {
				return counts[i].Sessions > counts[j].Sessions
			}
			// Equal counts fall back to key order
			return compareByKey(counts[i], counts[j])
		})
	}
}

// compareByKey orders rows case-insensitively, with the empty key last
func compareByKey(i, j Count) bool {
	if i.Key == "" || j.Key == "" {
		return j.Key == "" && i.Key != ""
	}
	ki, kj := strings.ToLower(i.Key), strings.ToLower(j.Key)
	if ki != kj {
		return ki < kj
	}
	return i.Key < j.Key
}
