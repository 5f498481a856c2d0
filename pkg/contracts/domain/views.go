package domain

// View names used by exporters and the HTTP API
const (
	ViewMap             = "map"
	ViewMonthly         = "monthly"
	ViewViolentCities   = "violent-cities"
	ViewLeastMortality  = "least-mortality"
	ViewTopCauses       = "top-causes"
	ViewAgeDistribution = "age-distribution"
	ViewDepartmentSex   = "department-sex"
)

// ViewNames returns every view name in presentation order
func ViewNames() []string {
	return []string{
		ViewMap,
		ViewMonthly,
		ViewViolentCities,
		ViewLeastMortality,
		ViewTopCauses,
		ViewAgeDistribution,
		ViewDepartmentSex,
	}
}

// DepartmentDeaths is one row of the choropleth map table.
// DepartmentCode matches the boundary document feature identifiers.
type DepartmentDeaths struct {
	DepartmentCode string `json:"department_code" csv:"COD_DEPARTAMENTO"`
	DepartmentName string `json:"department_name" csv:"DEPARTAMENTO"`
	TotalDeaths    int    `json:"total_deaths" csv:"TOTAL_MUERTES"`
}

// MonthlyDeaths is one row of the monthly line chart table
type MonthlyDeaths struct {
	MonthNumber int    `json:"month_number" csv:"MES"`
	MonthName   string `json:"month_name" csv:"MES_NOMBRE"`
	TotalDeaths int    `json:"total_deaths" csv:"TOTAL_MUERTES"`
}

// MunicipalityHomicides is one row of the most violent cities bar chart
type MunicipalityHomicides struct {
	MunicipalityName string `json:"municipality_name" csv:"MUNICIPIO"`
	TotalHomicides   int    `json:"total_homicides" csv:"TOTAL_HOMICIDIOS"`
}

// MunicipalityDeaths is one row of the least mortality pie chart
type MunicipalityDeaths struct {
	MunicipalityName string `json:"municipality_name" csv:"MUNICIPIO"`
	TotalDeaths      int    `json:"total_deaths" csv:"TOTAL_MUERTES"`
}

// CauseRank is one row of the top causes table
type CauseRank struct {
	Rank        int    `json:"rank" csv:"RANK"`
	CauseCode   string `json:"cause_code" csv:"COD_MUERTE"`
	Description string `json:"description" csv:"DESCRIPCION"`
	TotalCases  int    `json:"total_cases" csv:"TOTAL_CASOS"`
}

// AgeBandDeaths is one row of the age histogram
type AgeBandDeaths struct {
	AgeBand     string `json:"age_band_label" csv:"RANGO_EDAD"`
	TotalDeaths int    `json:"total_deaths" csv:"TOTAL_MUERTES"`
}

// DepartmentSexDeaths is one row of the stacked bar chart
type DepartmentSexDeaths struct {
	DepartmentName string `json:"department_name" csv:"DEPARTAMENTO"`
	SexLabel       string `json:"sex_label" csv:"SEXO"`
	TotalDeaths    int    `json:"total_deaths" csv:"TOTAL_MUERTES"`
}

// Views holds the seven output tables of one pipeline run
type Views struct {
	Year            int                     `json:"year"`
	Map             []DepartmentDeaths      `json:"map"`
	Monthly         []MonthlyDeaths         `json:"monthly"`
	ViolentCities   []MunicipalityHomicides `json:"violent_cities"`
	LeastMortality  []MunicipalityDeaths    `json:"least_mortality"`
	TopCauses       []CauseRank             `json:"top_causes"`
	AgeDistribution []AgeBandDeaths         `json:"age_distribution"`
	DepartmentSex   []DepartmentSexDeaths   `json:"department_sex"`
}

// Table returns the rows of the named view
func (v *Views) Table(name string) (any, bool) {
	switch name {
	case ViewMap:
		return v.Map, true
	case ViewMonthly:
		return v.Monthly, true
	case ViewViolentCities:
		return v.ViolentCities, true
	case ViewLeastMortality:
		return v.LeastMortality, true
	case ViewTopCauses:
		return v.TopCauses, true
	case ViewAgeDistribution:
		return v.AgeDistribution, true
	case ViewDepartmentSex:
		return v.DepartmentSex, true
	default:
		return nil, false
	}
}
