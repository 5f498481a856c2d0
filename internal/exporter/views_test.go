package exporter

import (
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

func sampleViews() *domain.Views {
	return &domain.Views{
		Year: 2019,
		Map: []domain.DepartmentDeaths{
			{DepartmentCode: "05", DepartmentName: "ANTIOQUIA", TotalDeaths: 4},
			{DepartmentCode: "11", DepartmentName: "BOGOTA, D.C.", TotalDeaths: 2},
		},
		Monthly: []domain.MonthlyDeaths{
			{MonthNumber: 1, MonthName: "Enero", TotalDeaths: 2},
			{MonthNumber: 2, MonthName: "Febrero", TotalDeaths: 1},
		},
		ViolentCities: []domain.MunicipalityHomicides{
			{MunicipalityName: "CALI", TotalHomicides: 3},
		},
		LeastMortality: []domain.MunicipalityDeaths{
			{MunicipalityName: "BELLO", TotalDeaths: 1},
			{MunicipalityName: "MEDELLÍN", TotalDeaths: 2},
		},
		TopCauses: []domain.CauseRank{
			{Rank: 1, CauseCode: "X954", Description: "Agresión con disparo", TotalCases: 4},
		},
		AgeDistribution: []domain.AgeBandDeaths{
			{AgeBand: "0-4", TotalDeaths: 1},
			{AgeBand: "85+", TotalDeaths: 2},
		},
		DepartmentSex: []domain.DepartmentSexDeaths{
			{DepartmentName: "ANTIOQUIA", SexLabel: "Masculino", TotalDeaths: 3},
			{DepartmentName: "ANTIOQUIA", SexLabel: "Femenino", TotalDeaths: 1},
		},
	}
}
