package domain

// Sex is the registered sex of the deceased.
// Values mirror the DANE SEXO codes; every unmapped code collapses to SexUnknown.
type Sex int

const (
	SexMale    Sex = 1
	SexFemale  Sex = 2
	SexOther   Sex = 3
	SexUnknown Sex = 9
)

// Sex labels as they appear in the output tables
const (
	SexLabelMale    = "Masculino"
	SexLabelFemale  = "Femenino"
	SexLabelOther   = "Otro"
	SexLabelUnknown = "Desconocido"
)

// SexFromCode maps a raw SEXO code to a Sex. The mapping is total:
// missing values (ok=false) and any code other than 1, 2 or 3 yield SexUnknown.
func SexFromCode(code int, ok bool) Sex {
	if !ok {
		return SexUnknown
	}
	switch code {
	case 1:
		return SexMale
	case 2:
		return SexFemale
	case 3:
		return SexOther
	default:
		return SexUnknown
	}
}

// Label returns the display label of the sex
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return SexLabelMale
	case SexFemale:
		return SexLabelFemale
	case SexOther:
		return SexLabelOther
	default:
		return SexLabelUnknown
	}
}

// String implements fmt.Stringer
func (s Sex) String() string {
	return s.Label()
}

// MortalityRecord is one death registration after key normalization.
//
// Codes are already in their join form: DepartmentCode is two digits,
// MunicipalityCode is the five digit DANE code and CauseCode is trimmed and
// uppercased. A code that could not be coerced is left empty.
// Month and Age carry an explicit validity flag because the source columns
// may hold blanks or non-numeric text.
type MortalityRecord struct {
	Year             int
	Month            int
	MonthValid       bool
	DepartmentCode   string
	MunicipalityCode string
	CauseCode        string
	Age              float64
	AgeValid         bool
	Sex              Sex
}

// DivisionEntry is one row of the DIVIPOLA administrative-division table.
// Names are kept as loaded; several rows may spell the same department differently.
type DivisionEntry struct {
	DepartmentCode   string
	DepartmentName   string
	MunicipalityCode string
	MunicipalityName string
}

// CauseCodeEntry maps a normalized CIE-10 code to its description
type CauseCodeEntry struct {
	Code        string
	Description string
}
