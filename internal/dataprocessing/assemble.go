package dataprocessing

import (
	"sort"
	"strconv"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// Assembler turns counts into view rows, left-merging names from the
// directories. A code with no directory entry keeps its row with an empty name.
type Assembler struct {
	departments *Directory
	causes      *Directory
	monthNames  [12]string
}

// NewAssembler creates an assembler labelling months in locale
func NewAssembler(departments, causes *Directory, locale string) *Assembler {
	return &Assembler{
		departments: departments,
		causes:      causes,
		monthNames:  MonthNames(locale),
	}
}

// Map builds the choropleth rows, one per department code
func (a *Assembler) Map(t Tally) []domain.DepartmentDeaths {
	rows := make([]domain.DepartmentDeaths, 0, len(t.Counts))
	for _, c := range t.Counts {
		name, _ := a.departments.Lookup(c.Key)
		rows = append(rows, domain.DepartmentDeaths{
			DepartmentCode: c.Key,
			DepartmentName: name,
			TotalDeaths:    c.Total,
		})
	}
	return rows
}

// Monthly builds the twelve month rows
func (a *Assembler) Monthly(t MonthTally) []domain.MonthlyDeaths {
	rows := make([]domain.MonthlyDeaths, 12)
	for i := range rows {
		rows[i] = domain.MonthlyDeaths{
			MonthNumber: i + 1,
			MonthName:   a.monthNames[i],
			TotalDeaths: t.Totals[i],
		}
	}
	return rows
}

// ViolentCities builds the homicide ranking rows
func (a *Assembler) ViolentCities(counts []AggregatedCount) []domain.MunicipalityHomicides {
	rows := make([]domain.MunicipalityHomicides, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, domain.MunicipalityHomicides{MunicipalityName: c.Key, TotalHomicides: c.Total})
	}
	return rows
}

// LeastMortality builds the least mortality rows
func (a *Assembler) LeastMortality(counts []AggregatedCount) []domain.MunicipalityDeaths {
	rows := make([]domain.MunicipalityDeaths, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, domain.MunicipalityDeaths{MunicipalityName: c.Key, TotalDeaths: c.Total})
	}
	return rows
}

// TopCauses builds the ranked causes table
func (a *Assembler) TopCauses(ranked []RankedRow) []domain.CauseRank {
	rows := make([]domain.CauseRank, 0, len(ranked))
	for _, r := range ranked {
		desc, _ := a.causes.Lookup(r.Key)
		rows = append(rows, domain.CauseRank{
			Rank:        r.Rank,
			CauseCode:   r.Key,
			Description: desc,
			TotalCases:  r.Total,
		})
	}
	return rows
}

// AgeDistribution builds the age histogram rows
func (a *Assembler) AgeDistribution(t Tally) []domain.AgeBandDeaths {
	rows := make([]domain.AgeBandDeaths, 0, len(t.Counts))
	for _, c := range t.Counts {
		rows = append(rows, domain.AgeBandDeaths{AgeBand: c.Key, TotalDeaths: c.Total})
	}
	return rows
}

// DepartmentSex builds the stacked bar rows, one per observed
// department and sex combination
func (a *Assembler) DepartmentSex(t Tally) []domain.DepartmentSexDeaths {
	rows := make([]domain.DepartmentSexDeaths, 0, len(t.Counts))
	for _, c := range t.Counts {
		name, _ := a.departments.Lookup(c.Key)
		code, err := strconv.Atoi(c.SubKey)
		rows = append(rows, domain.DepartmentSexDeaths{
			DepartmentName: name,
			SexLabel:       domain.SexFromCode(code, err == nil).Label(),
			TotalDeaths:    c.Total,
		})
	}
	return rows
}

// UnmappedDepartments returns the map view codes that have no boundary
// feature, in ascending order. Their deaths cannot be drawn on the map.
func UnmappedDepartments(rows []domain.DepartmentDeaths, featureIDs []string) []string {
	features := make(map[string]struct{}, len(featureIDs))
	for _, id := range featureIDs {
		features[id] = struct{}{}
	}

	var missing []string
	for _, r := range rows {
		if _, ok := features[r.DepartmentCode]; !ok {
			missing = append(missing, r.DepartmentCode)
		}
	}
	sort.Strings(missing)
	return missing
}
