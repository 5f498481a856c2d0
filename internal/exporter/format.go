package exporter

import (
	"strconv"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// ViewTable is a view flattened to a header and string records
type ViewTable struct {
	Name    string
	Headers []string
	Records [][]string
}

// formatInt formats an integer cell
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// Tables flattens every view in presentation order
func Tables(views *domain.Views) []ViewTable {
	if views == nil {
		return nil
	}
	tables := make([]ViewTable, 0, len(domain.ViewNames()))
	for _, name := range domain.ViewNames() {
		if t, ok := TableFor(views, name); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// TableFor flattens one view. Headers follow the published column names.
func TableFor(views *domain.Views, name string) (ViewTable, bool) {
	if views == nil {
		return ViewTable{}, false
	}
	t := ViewTable{Name: name}

	switch name {
	case domain.ViewMap:
		t.Headers = []string{"COD_DEPARTAMENTO", "DEPARTAMENTO", "TOTAL_MUERTES"}
		for _, r := range views.Map {
			t.Records = append(t.Records, []string{r.DepartmentCode, r.DepartmentName, formatInt(r.TotalDeaths)})
		}
	case domain.ViewMonthly:
		t.Headers = []string{"MES", "MES_NOMBRE", "TOTAL_MUERTES"}
		for _, r := range views.Monthly {
			t.Records = append(t.Records, []string{formatInt(r.MonthNumber), r.MonthName, formatInt(r.TotalDeaths)})
		}
	case domain.ViewViolentCities:
		t.Headers = []string{"MUNICIPIO", "TOTAL_HOMICIDIOS"}
		for _, r := range views.ViolentCities {
			t.Records = append(t.Records, []string{r.MunicipalityName, formatInt(r.TotalHomicides)})
		}
	case domain.ViewLeastMortality:
		t.Headers = []string{"MUNICIPIO", "TOTAL_MUERTES"}
		for _, r := range views.LeastMortality {
			t.Records = append(t.Records, []string{r.MunicipalityName, formatInt(r.TotalDeaths)})
		}
	case domain.ViewTopCauses:
		t.Headers = []string{"RANK", "COD_MUERTE", "DESCRIPCION", "TOTAL_CASOS"}
		for _, r := range views.TopCauses {
			t.Records = append(t.Records, []string{formatInt(r.Rank), r.CauseCode, r.Description, formatInt(r.TotalCases)})
		}
	case domain.ViewAgeDistribution:
		t.Headers = []string{"RANGO_EDAD", "TOTAL_MUERTES"}
		for _, r := range views.AgeDistribution {
			t.Records = append(t.Records, []string{r.AgeBand, formatInt(r.TotalDeaths)})
		}
	case domain.ViewDepartmentSex:
		t.Headers = []string{"DEPARTAMENTO", "SEXO", "TOTAL_MUERTES"}
		for _, r := range views.DepartmentSex {
			t.Records = append(t.Records, []string{r.DepartmentName, r.SexLabel, formatInt(r.TotalDeaths)})
		}
	default:
		return ViewTable{}, false
	}

	return t, true
}
