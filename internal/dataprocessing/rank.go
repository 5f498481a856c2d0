package dataprocessing

import "sort"

// TopN sorts a copy of counts by total and keeps the first n rows.
// The sort is stable, so equal totals keep their incoming order. n <= 0
// keeps every row.
func TopN(counts []AggregatedCount, n int, order Order) []AggregatedCount {
	sorted := make([]AggregatedCount, len(counts))
	copy(sorted, counts)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == Ascending {
			return sorted[i].Total < sorted[j].Total
		}
		return sorted[i].Total > sorted[j].Total
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DenseRank numbers rows 1..len(rows) in their current order, ties included
func DenseRank(rows []AggregatedCount) []RankedRow {
	ranked := make([]RankedRow, len(rows))
	for i, row := range rows {
		ranked[i] = RankedRow{Rank: i + 1, AggregatedCount: row}
	}
	return ranked
}
