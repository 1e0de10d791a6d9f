package catalog

import (
	"strings"

	"github.com/signalsfoundry/ds9-regions/model"
)

// Match returns the catalog indices of records containing query as a
// case-sensitive substring of at least one string-valued field. Numeric
// fields are never candidates. An empty query matches every record.
func Match(records []model.RegionRecord, query string) []int {
	idx := make([]int, 0, len(records))
	for i, r := range records {
		if matches(r, query) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Filter returns the matching records in their original order.
func Filter(records []model.RegionRecord, query string) []model.RegionRecord {
	out := make([]model.RegionRecord, 0, len(records))
	for _, i := range Match(records, query) {
		out = append(out, records[i])
	}
	return out
}

func matches(r model.RegionRecord, query string) bool {
	for _, s := range r.SearchableStrings() {
		if strings.Contains(s, query) {
			return true
		}
	}
	return false
}
