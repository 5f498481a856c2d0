package dataprocessing

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// groupKey returns the grouping key of a record, or false to exclude it
type groupKey func(r domain.MortalityRecord) (key, subKey string, ok bool)

// countBy groups records and returns counts in ascending (Key, SubKey) order
func countBy(records []domain.MortalityRecord, keyOf groupKey) Tally {
	totals := make(map[[2]string]int)
	excluded := 0

	for _, r := range records {
		key, sub, ok := keyOf(r)
		if !ok {
			excluded++
			continue
		}
		totals[[2]string{key, sub}]++
	}

	counts := make([]AggregatedCount, 0, len(totals))
	for k, total := range totals {
		counts = append(counts, AggregatedCount{Key: k[0], SubKey: k[1], Total: total})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Key != counts[j].Key {
			return counts[i].Key < counts[j].Key
		}
		return counts[i].SubKey < counts[j].SubKey
	})

	return Tally{Counts: counts, Excluded: excluded}
}

// CountByDepartment counts deaths per two-digit department code
func CountByDepartment(records []domain.MortalityRecord) Tally {
	return countBy(records, func(r domain.MortalityRecord) (string, string, bool) {
		return r.DepartmentCode, "", r.DepartmentCode != ""
	})
}

// CountByMonth counts deaths per calendar month. Records without a valid
// month are excluded; months with no deaths stay at zero.
func CountByMonth(records []domain.MortalityRecord) MonthTally {
	var t MonthTally
	for _, r := range records {
		if !r.MonthValid || r.Month < 1 || r.Month > 12 {
			t.Excluded++
			continue
		}
		t.Totals[r.Month-1]++
	}
	return t
}

// IsHomicide reports whether a cause code denotes assault by firearm
func IsHomicide(causeCode string) bool {
	return strings.HasPrefix(NormalizeCode(causeCode), HomicideCausePrefix)
}

// CountHomicidesByMunicipality counts X95 deaths per municipality name.
// Codes missing from the directory group under the empty name.
func CountHomicidesByMunicipality(records []domain.MortalityRecord, municipalities *Directory) Tally {
	homicides := make([]domain.MortalityRecord, 0, len(records)/8)
	for _, r := range records {
		if IsHomicide(r.CauseCode) {
			homicides = append(homicides, r)
		}
	}
	return CountByMunicipality(homicides, municipalities)
}

// CountByMunicipality counts deaths per municipality name
func CountByMunicipality(records []domain.MortalityRecord, municipalities *Directory) Tally {
	return countBy(records, func(r domain.MortalityRecord) (string, string, bool) {
		name, _ := municipalities.Lookup(r.MunicipalityCode)
		return name, "", true
	})
}

// CountByCause counts deaths per four-character cause code
func CountByCause(records []domain.MortalityRecord) Tally {
	return countBy(records, func(r domain.MortalityRecord) (string, string, bool) {
		code := NormalizeCode(r.CauseCode)
		return code, "", utf8.RuneCountInString(code) >= MinCauseCodeLength
	})
}

// CountByAgeBand counts deaths per quinquennial age band, youngest band first
// and 85+ last
func CountByAgeBand(records []domain.MortalityRecord) Tally {
	t := countBy(records, func(r domain.MortalityRecord) (string, string, bool) {
		if !r.AgeValid || r.Age < 0 {
			return "", "", false
		}
		return AgeBand(r.Age), "", true
	})
	sort.SliceStable(t.Counts, func(i, j int) bool {
		return ageBandLowerBound(t.Counts[i].Key) < ageBandLowerBound(t.Counts[j].Key)
	})
	return t
}

// CountByDepartmentSex counts deaths per department code and sex. SubKey is
// the numeric sex code so groups sort as Masculino, Femenino, Otro, Desconocido.
// Records without a usable department code are excluded, matching
// CountByDepartment.
func CountByDepartmentSex(records []domain.MortalityRecord) Tally {
	return countBy(records, func(r domain.MortalityRecord) (string, string, bool) {
		return r.DepartmentCode, strconv.Itoa(int(r.Sex)), r.DepartmentCode != ""
	})
}
