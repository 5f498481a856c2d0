package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MortalityCSV is a small death registration table. Eleven rows belong to
// 2019 and one to 2018. It carries a blank month, a non-numeric age, a
// missing sex, a lowercase homicide code and a Y95 code that is not a homicide.
const MortalityCSV = `AÑO,MES,COD_DEPARTAMENTO,COD_DANE,COD_MUERTE,GRUPO_EDAD1,SEXO
2019,1,5,5001,X954,30,1
2019,1,5,5001,x950,25,1
2019,2,5,5088,X954,40,2
2019,3,11,11001,I219,70,1
2019,3,11,11001,I219,85,2
2019,5,76,76001,X959,22,1
2019,5,76,76001,X954,19,1
2019,5,76,76001,X954,33,3
2019,12,76,76109,Y950,90,2
2019,,76,76520,I219,4,
2019,7,5,5266,C349,abc,9
2018,1,5,5001,X954,30,1
`

// DivisionCSV is a DIVIPOLA extract with competing department spellings
const DivisionCSV = `COD_DEPARTAMENTO,DEPARTAMENTO,COD_DANE,MUNICIPIO
5,Antioquia,5001,MEDELLÍN
5,ANTIOQUIA,5088,BELLO
5,Antioquia,5266,ENVIGADO
11,"BOGOTÁ, D.C.",11001,"BOGOTÁ, D.C."
76,Valle del Cauca,76001,CALI
76,VALLE DEL CAUCA,76520,PALMIRA
76,Valle del Cauca,76109,BUENAVENTURA
`

// CausesCSV is a CIE-10 catalogue extract using the published headers.
// Y950 is deliberately absent.
const CausesCSV = `Codigo de la CIE-10 cuatro caracteres,Descripcion  de codigos mortalidad a cuatro caracteres
x954,"Agresión con disparo de otras armas de fuego, en vivienda"
X950,"Agresión con disparo de arma corta, en vivienda"
X959,"Agresión con disparo de otras armas de fuego, en lugar no especificado"
I219,Infarto agudo del miocardio
C349,Tumor maligno de los bronquios o del pulmón
`

// GeoJSON is a boundary document with four departments. 08 has no deaths.
const GeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"DPTO": "05", "NOMBRE_DPT": "ANTIOQUIA"}, "geometry": {"type": "Point", "coordinates": [-75.5, 6.2]}},
    {"type": "Feature", "properties": {"DPTO": "08", "NOMBRE_DPT": "ATLANTICO"}, "geometry": {"type": "Point", "coordinates": [-74.8, 10.9]}},
    {"type": "Feature", "properties": {"DPTO": "11", "NOMBRE_DPT": "SANTAFE DE BOGOTA D.C"}, "geometry": {"type": "Point", "coordinates": [-74.1, 4.6]}},
    {"type": "Feature", "id": 76, "properties": {"NOMBRE_DPT": "VALLE DEL CAUCA"}, "geometry": {"type": "Point", "coordinates": [-76.5, 3.4]}}
  ]
}`

// FixtureFiles are the paths written by WriteFixtureFiles
type FixtureFiles struct {
	Dir       string
	Mortality string
	Division  string
	Causes    string
	Geo       string
}

// WriteFixtureFiles writes the fixture inputs as UTF-8 files into a temp dir
func WriteFixtureFiles(t *testing.T) FixtureFiles {
	t.Helper()
	dir := t.TempDir()
	files := FixtureFiles{
		Dir:       dir,
		Mortality: filepath.Join(dir, "datosmortalidad.csv"),
		Division:  filepath.Join(dir, "divipola.csv"),
		Causes:    filepath.Join(dir, "Codigosmuerte.csv"),
		Geo:       filepath.Join(dir, "Colombia.geo.json"),
	}

	write := func(path, content string) {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", path, err)
		}
	}
	write(files.Mortality, MortalityCSV)
	write(files.Division, DivisionCSV)
	write(files.Causes, CausesCSV)
	write(files.Geo, GeoJSON)

	return files
}
