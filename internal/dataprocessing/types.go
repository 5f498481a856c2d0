package dataprocessing

import (
	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// Grouping constants
const (
	DepartmentCodeWidth   = 2
	MunicipalityCodeWidth = 5

	// HomicideCausePrefix selects assault by firearm discharge (X95x)
	HomicideCausePrefix = "X95"
	// MinCauseCodeLength keeps only four-character CIE-10 codes
	MinCauseCodeLength = 4

	AgeBandWidth     = 5
	OpenAgeBandStart = 85
	OpenAgeBandLabel = "85+"
)

// Snapshot is the typed, immutable input of a pipeline run.
// Nothing downstream of BuildSnapshot modifies it.
type Snapshot struct {
	Records   []domain.MortalityRecord
	Divisions []domain.DivisionEntry
	Causes    []domain.CauseCodeEntry

	// FeatureIDs are the boundary document department codes, padded when numeric
	FeatureIDs []string
	Boundaries *dataset.Boundaries
}

// ForYear returns a snapshot holding only the records of year.
// Year 0 returns s unchanged.
func (s *Snapshot) ForYear(year int) *Snapshot {
	if year == 0 {
		return s
	}

	filtered := *s
	filtered.Records = make([]domain.MortalityRecord, 0, len(s.Records))
	for _, r := range s.Records {
		if r.Year == year {
			filtered.Records = append(filtered.Records, r)
		}
	}
	return &filtered
}

// AggregatedCount is one group of a count. SubKey is set only for two-level
// groupings such as department by sex.
type AggregatedCount struct {
	Key    string
	SubKey string
	Total  int
}

// Tally is the result of one grouping. Counts are in ascending key order and
// Excluded is the number of records left out because a key could not be
// coerced.
type Tally struct {
	Counts   []AggregatedCount
	Excluded int
}

// Sum returns the total over all groups
func (t Tally) Sum() int {
	sum := 0
	for _, c := range t.Counts {
		sum += c.Total
	}
	return sum
}

// MonthTally holds exactly one total per calendar month, January first
type MonthTally struct {
	Totals   [12]int
	Excluded int
}

// RankedRow is a count with its 1-based position after ranking
type RankedRow struct {
	Rank int
	AggregatedCount
}

// Order is the sort direction of a ranking
type Order int

const (
	Descending Order = iota
	Ascending
)
