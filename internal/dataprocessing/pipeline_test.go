package dataprocessing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brayanmoyano53/dashboard/internal/dataset"
	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/internal/infrastructure"
	"github.com/brayanmoyano53/dashboard/internal/shared/testutil"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func fixtureInputs(t *testing.T) *dataset.Inputs {
	t.Helper()
	read := func(content, name string) *dataset.Table {
		table, err := dataset.ReadCSV(strings.NewReader(content), name, dataset.EncodingUTF8)
		require.NoError(t, err)
		return table
	}
	geo, err := dataset.LoadGeoJSON(strings.NewReader(testutil.GeoJSON))
	require.NoError(t, err)

	return &dataset.Inputs{
		Mortality: read(testutil.MortalityCSV, dataset.TableMortality),
		Division:  read(testutil.DivisionCSV, dataset.TableDivision),
		Causes:    read(testutil.CausesCSV, dataset.TableCauses),
		Geo:       geo,
	}
}

func fixtureSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := BuildSnapshot(fixtureInputs(t))
	require.NoError(t, err)
	return snap
}

func TestBuildSnapshot(t *testing.T) {
	snap := fixtureSnapshot(t)

	require.Len(t, snap.Records, 12)
	assert.Len(t, snap.Divisions, 7)
	assert.Len(t, snap.Causes, 5)
	assert.Equal(t, []string{"05", "08", "11", "76"}, snap.FeatureIDs)

	first := snap.Records[0]
	assert.Equal(t, domain.MortalityRecord{
		Year: 2019, Month: 1, MonthValid: true,
		DepartmentCode: "05", MunicipalityCode: "05001", CauseCode: "X954",
		Age: 30, AgeValid: true, Sex: domain.SexMale,
	}, first)

	// lowercase cause code is normalized
	assert.Equal(t, "X950", snap.Records[1].CauseCode)

	// blank month and blank sex
	blank := snap.Records[9]
	assert.False(t, blank.MonthValid)
	assert.Equal(t, domain.SexUnknown, blank.Sex)

	// non-numeric age
	assert.False(t, snap.Records[10].AgeValid)

	assert.Equal(t, "X954", snap.Causes[0].Code)
	assert.Equal(t, "05001", snap.Divisions[0].MunicipalityCode)
}

func TestBuildSnapshot_DoesNotMutateTables(t *testing.T) {
	inputs := fixtureInputs(t)
	before := append([]string(nil), inputs.Mortality.Rows[1]...)

	_, err := BuildSnapshot(inputs)
	require.NoError(t, err)

	assert.Equal(t, before, inputs.Mortality.Rows[1])
	assert.Equal(t, "x950", inputs.Mortality.Rows[1][4])
}

func TestBuildSnapshot_SchemaErrors(t *testing.T) {
	inputs := fixtureInputs(t)
	inputs.Division = &dataset.Table{Name: "division", Header: []string{"COD_DEPARTAMENTO"}, Rows: [][]string{{"5"}}}

	_, err := BuildSnapshot(inputs)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchema))

	_, err = BuildSnapshot(nil)
	assert.True(t, errors.IsType(err, errors.ErrTypeInput))
}

func TestSnapshot_ForYear(t *testing.T) {
	snap := fixtureSnapshot(t)

	assert.Len(t, snap.ForYear(2019).Records, 11)
	assert.Len(t, snap.ForYear(2018).Records, 1)
	assert.Empty(t, snap.ForYear(2000).Records)
	assert.Same(t, snap, snap.ForYear(0))
	assert.Len(t, snap.Records, 12, "filtering must not shrink the source snapshot")
}

func TestNewPipeline_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		config PipelineConfig
		want   PipelineConfig
	}{
		{
			name:   "zero config takes defaults but keeps year",
			config: PipelineConfig{},
			want:   PipelineConfig{Year: 0, TopViolent: 5, TopLeastMortality: 10, TopCauses: 10, MonthLocale: LocaleSpanish},
		},
		{
			name:   "custom config",
			config: PipelineConfig{Year: 2018, TopViolent: 3, TopLeastMortality: 4, TopCauses: 2, MonthLocale: LocaleEnglish},
			want:   PipelineConfig{Year: 2018, TopViolent: 3, TopLeastMortality: 4, TopCauses: 2, MonthLocale: LocaleEnglish},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(nil, tt.config)
			assert.Equal(t, tt.want, p.Config())
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	p := NewPipeline(logger, DefaultPipelineConfig())

	views, err := p.Run(context.Background(), fixtureSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, 2019, views.Year)

	assert.Equal(t, []domain.DepartmentDeaths{
		{DepartmentCode: "05", DepartmentName: "ANTIOQUIA", TotalDeaths: 4},
		{DepartmentCode: "11", DepartmentName: "BOGOTA, D.C.", TotalDeaths: 2},
		{DepartmentCode: "76", DepartmentName: "VALLE DEL CAUCA", TotalDeaths: 5},
	}, views.Map)

	require.Len(t, views.Monthly, 12)
	wantMonthly := []int{2, 1, 2, 0, 3, 0, 1, 0, 0, 0, 0, 1}
	sum := 0
	for i, row := range views.Monthly {
		assert.Equal(t, i+1, row.MonthNumber)
		assert.Equal(t, wantMonthly[i], row.TotalDeaths, row.MonthName)
		sum += row.TotalDeaths
	}
	assert.Equal(t, 10, sum, "one 2019 record has a blank month")
	assert.Equal(t, "MAYO", views.Monthly[4].MonthName)

	assert.Equal(t, []domain.MunicipalityHomicides{
		{MunicipalityName: "CALI", TotalHomicides: 3},
		{MunicipalityName: "MEDELLÍN", TotalHomicides: 2},
		{MunicipalityName: "BELLO", TotalHomicides: 1},
	}, views.ViolentCities)

	assert.Equal(t, []domain.MunicipalityDeaths{
		{MunicipalityName: "BELLO", TotalDeaths: 1},
		{MunicipalityName: "BUENAVENTURA", TotalDeaths: 1},
		{MunicipalityName: "ENVIGADO", TotalDeaths: 1},
		{MunicipalityName: "PALMIRA", TotalDeaths: 1},
		{MunicipalityName: "BOGOTÁ, D.C.", TotalDeaths: 2},
		{MunicipalityName: "MEDELLÍN", TotalDeaths: 2},
		{MunicipalityName: "CALI", TotalDeaths: 3},
	}, views.LeastMortality)

	require.Len(t, views.TopCauses, 6)
	assert.Equal(t, domain.CauseRank{
		Rank: 1, CauseCode: "X954",
		Description: "Agresión con disparo de otras armas de fuego, en vivienda",
		TotalCases:  4,
	}, views.TopCauses[0])
	assert.Equal(t, domain.CauseRank{Rank: 2, CauseCode: "I219", Description: "Infarto agudo del miocardio", TotalCases: 3}, views.TopCauses[1])
	assert.Equal(t, domain.CauseRank{Rank: 6, CauseCode: "Y950", Description: "", TotalCases: 1}, views.TopCauses[5])

	assert.Equal(t, []domain.AgeBandDeaths{
		{AgeBand: "0-4", TotalDeaths: 1},
		{AgeBand: "15-19", TotalDeaths: 1},
		{AgeBand: "20-24", TotalDeaths: 1},
		{AgeBand: "25-29", TotalDeaths: 1},
		{AgeBand: "30-34", TotalDeaths: 2},
		{AgeBand: "40-44", TotalDeaths: 1},
		{AgeBand: "70-74", TotalDeaths: 1},
		{AgeBand: "85+", TotalDeaths: 2},
	}, views.AgeDistribution)

	assert.Equal(t, []domain.DepartmentSexDeaths{
		{DepartmentName: "ANTIOQUIA", SexLabel: "Masculino", TotalDeaths: 2},
		{DepartmentName: "ANTIOQUIA", SexLabel: "Femenino", TotalDeaths: 1},
		{DepartmentName: "ANTIOQUIA", SexLabel: "Desconocido", TotalDeaths: 1},
		{DepartmentName: "BOGOTA, D.C.", SexLabel: "Masculino", TotalDeaths: 1},
		{DepartmentName: "BOGOTA, D.C.", SexLabel: "Femenino", TotalDeaths: 1},
		{DepartmentName: "VALLE DEL CAUCA", SexLabel: "Masculino", TotalDeaths: 2},
		{DepartmentName: "VALLE DEL CAUCA", SexLabel: "Femenino", TotalDeaths: 1},
		{DepartmentName: "VALLE DEL CAUCA", SexLabel: "Otro", TotalDeaths: 1},
		{DepartmentName: "VALLE DEL CAUCA", SexLabel: "Desconocido", TotalDeaths: 1},
	}, views.DepartmentSex)

	for _, name := range domain.ViewNames() {
		assert.True(t, handler.ContainsAttr("view", name), "no log line for view %s", name)
	}
	assert.True(t, handler.ContainsMessage("Pipeline run completed"))
	assert.True(t, handler.ContainsAttr("mapped_deaths", int64(11)))
	assert.False(t, handler.ContainsMessage("Departments without boundary feature"))
	testutil.AssertNoErrors(t, handler)
}

func TestPipeline_DepartmentSexTotalsMatchMap(t *testing.T) {
	views, err := NewPipeline(nil, PipelineConfig{Year: 0}).Run(context.Background(), fixtureSnapshot(t))
	require.NoError(t, err)

	bySex := map[string]int{}
	for _, row := range views.DepartmentSex {
		bySex[row.DepartmentName] += row.TotalDeaths
	}
	for _, row := range views.Map {
		assert.Equal(t, row.TotalDeaths, bySex[row.DepartmentName], row.DepartmentName)
	}
	assert.Equal(t, 5, views.Map[0].TotalDeaths, "2018 record included without a year filter")
}

func TestPipeline_Idempotent(t *testing.T) {
	snap := fixtureSnapshot(t)
	p := NewPipeline(nil, DefaultPipelineConfig())

	first, err := p.Run(context.Background(), snap)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipeline_EnglishMonthNames(t *testing.T) {
	cfg := DefaultPipelineConfig()
	assert.Equal(t, LocaleSpanish, cfg.MonthLocale)

	cfg.MonthLocale = LocaleEnglish
	views, err := NewPipeline(nil, cfg).Run(context.Background(), fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, views.Monthly, 12)
	assert.Equal(t, "JANUARY", views.Monthly[0].MonthName)
	assert.Equal(t, "MAY", views.Monthly[4].MonthName)
	assert.Equal(t, "DECEMBER", views.Monthly[11].MonthName)
}

func TestPipeline_TopNConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.TopViolent = 1
	cfg.TopLeastMortality = 2
	cfg.TopCauses = 2

	views, err := NewPipeline(nil, cfg).Run(context.Background(), fixtureSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, []domain.MunicipalityHomicides{{MunicipalityName: "CALI", TotalHomicides: 3}}, views.ViolentCities)
	assert.Len(t, views.LeastMortality, 2)
	require.Len(t, views.TopCauses, 2)
	assert.Equal(t, 2, views.TopCauses[1].Rank)
}

func TestPipeline_EmptyYear(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	cfg := DefaultPipelineConfig()
	cfg.Year = 1990

	views, err := NewPipeline(logger, cfg).Run(context.Background(), fixtureSnapshot(t))
	require.NoError(t, err)

	assert.Len(t, views.Monthly, 12)
	assert.Empty(t, views.Map)
	assert.Empty(t, views.TopCauses)
	assert.True(t, handler.ContainsMessage("No mortality records for configured year"))
}

func TestPipeline_UnmappedDepartmentWarning(t *testing.T) {
	snap := fixtureSnapshot(t)
	snap.FeatureIDs = []string{"05", "11"}

	logger, handler := testutil.NewTestLogger(t)
	_, err := NewPipeline(logger, DefaultPipelineConfig()).Run(context.Background(), snap)
	require.NoError(t, err)

	assert.True(t, handler.ContainsMessage("Departments without boundary feature"))
}

func TestPipeline_NilSnapshot(t *testing.T) {
	_, err := NewPipeline(nil, DefaultPipelineConfig()).Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}

func TestPipeline_WithMetrics(t *testing.T) {
	metrics, err := infrastructure.CreateMetrics(nil)
	require.NoError(t, err)

	p := NewPipeline(nil, DefaultPipelineConfig(), WithMetrics(metrics), WithTracer(nil))
	_, err = p.Run(context.Background(), fixtureSnapshot(t))
	assert.NoError(t, err)
}
