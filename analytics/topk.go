package analytics

import (
	"sort"

	"github.com/NDNewell/earnings-analytics/models"
)

// DefaultTopN is the ranking size used when the caller does not ask
// for a specific one.
const DefaultTopN = 5

// Metric selects a derived metric from an enriched record. A nil
// return means the metric is undefined for that record (missing or
// non-positive denominator) and the record can never be ranked by it.
type Metric func(r models.EnrichedRecord) *float64

func RevenuePerMile(r models.EnrichedRecord) *float64 {
	return r.RevenuePerMile
}

func RevenuePerMinute(r models.EnrichedRecord) *float64 {
	return r.RevenuePerMinute
}

// SelectTop returns up to k records in descending metric order.
// Records with an undefined metric are filtered out before ranking.
// Ties keep their original input order (stable sort), so reordering
// the input can only reorder equal-metric records. k <= 0 returns an
// empty slice; fewer than k valid records returns all of them.
func SelectTop(records []models.EnrichedRecord, metric Metric, k int) []models.EnrichedRecord {
	valid := make([]models.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if metric(r) != nil {
			valid = append(valid, r)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return *metric(valid[i]) > *metric(valid[j])
	})

	if k < 0 {
		k = 0
	}
	if k > len(valid) {
		k = len(valid)
	}
	return valid[:k]
}
