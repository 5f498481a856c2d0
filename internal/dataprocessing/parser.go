package dataprocessing

import (
	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// BuildSnapshot validates the raw tables and converts them into typed records.
// Cells are copied out of the tables, which are never modified.
func BuildSnapshot(inputs *dataset.Inputs) (*Snapshot, error) {
	if inputs == nil {
		return nil, errors.NewInputError("no inputs loaded", nil)
	}

	mortality, err := dataset.MortalitySchema.Validate(inputs.Mortality)
	if err != nil {
		return nil, err
	}
	division, err := dataset.DivisionSchema.Validate(inputs.Division)
	if err != nil {
		return nil, err
	}
	causes, err := dataset.CausesSchema.Validate(inputs.Causes)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Records:    parseMortality(mortality),
		Divisions:  parseDivisions(division),
		Causes:     parseCauses(causes),
		Boundaries: inputs.Geo,
	}
	if inputs.Geo != nil {
		snap.FeatureIDs = normalizeFeatureIDs(inputs.Geo.FeatureIDs())
	}
	return snap, nil
}

func parseMortality(p *dataset.Projection) []domain.MortalityRecord {
	records := make([]domain.MortalityRecord, p.Len())
	for i := range records {
		r := &records[i]

		r.Year, _ = parseWhole(p.Value(i, dataset.ColYear))

		if month, ok := parseWhole(p.Value(i, dataset.ColMonth)); ok && month >= 1 && month <= 12 {
			r.Month = month
			r.MonthValid = true
		}

		r.DepartmentCode, _ = PadCode(p.Value(i, dataset.ColDepartmentCode), DepartmentCodeWidth)
		r.MunicipalityCode, _ = PadCode(p.Value(i, dataset.ColMunicipalityCode), MunicipalityCodeWidth)
		r.CauseCode = NormalizeCode(p.Value(i, dataset.ColCauseCode))

		if age, ok := ParseNumber(p.Value(i, dataset.ColAge)); ok && age >= 0 {
			r.Age = age
			r.AgeValid = true
		}

		sex, ok := parseWhole(p.Value(i, dataset.ColSex))
		r.Sex = domain.SexFromCode(sex, ok)
	}
	return records
}

func parseDivisions(p *dataset.Projection) []domain.DivisionEntry {
	entries := make([]domain.DivisionEntry, p.Len())
	for i := range entries {
		e := &entries[i]
		e.DepartmentCode, _ = PadCode(p.Value(i, dataset.ColDepartmentCode), DepartmentCodeWidth)
		e.DepartmentName = p.Value(i, dataset.ColDepartmentName)
		e.MunicipalityCode, _ = PadCode(p.Value(i, dataset.ColMunicipalityCode), MunicipalityCodeWidth)
		e.MunicipalityName = p.Value(i, dataset.ColMunicipalityName)
	}
	return entries
}

func parseCauses(p *dataset.Projection) []domain.CauseCodeEntry {
	entries := make([]domain.CauseCodeEntry, p.Len())
	for i := range entries {
		entries[i] = domain.CauseCodeEntry{
			Code:        NormalizeCode(p.Value(i, dataset.ColCauseCode)),
			Description: p.Value(i, dataset.ColCauseDescription),
		}
	}
	return entries
}

// normalizeFeatureIDs pads numeric identifiers so they join with department codes
func normalizeFeatureIDs(raw []string) []string {
	ids := make([]string, len(raw))
	for i, id := range raw {
		if padded, ok := PadCode(id, DepartmentCodeWidth); ok {
			ids[i] = padded
		} else {
			ids[i] = id
		}
	}
	return ids
}
