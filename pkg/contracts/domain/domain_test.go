package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSexFromCode(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		ok    bool
		want  Sex
		label string
	}{
		{"male", 1, true, SexMale, SexLabelMale},
		{"female", 2, true, SexFemale, SexLabelFemale},
		{"other", 3, true, SexOther, SexLabelOther},
		{"declared unknown", 9, true, SexUnknown, SexLabelUnknown},
		{"unmapped code", 7, true, SexUnknown, SexLabelUnknown},
		{"zero", 0, true, SexUnknown, SexLabelUnknown},
		{"missing", 1, false, SexUnknown, SexLabelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SexFromCode(tt.code, tt.ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, tt.label, got.String())
		})
	}
}

func TestViewsTable(t *testing.T) {
	views := &Views{
		Map:           []DepartmentDeaths{{DepartmentCode: "05", DepartmentName: "ANTIOQUIA", TotalDeaths: 4}},
		DepartmentSex: []DepartmentSexDeaths{{DepartmentName: "ANTIOQUIA", SexLabel: SexLabelMale, TotalDeaths: 4}},
	}

	for _, name := range ViewNames() {
		_, ok := views.Table(name)
		assert.True(t, ok, name)
	}

	rows, ok := views.Table(ViewMap)
	assert.True(t, ok)
	assert.Equal(t, views.Map, rows)

	_, ok = views.Table("unknown")
	assert.False(t, ok)
}

func TestViewNamesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"map", "monthly", "violent-cities", "least-mortality",
		"top-causes", "age-distribution", "department-sex",
	}, ViewNames())
}
