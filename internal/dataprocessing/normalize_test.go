package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bogotá, D.C.", "BOGOTA, D.C."},
		{"  Medellín ", "MEDELLIN"},
		{"Nariño", "NARINO"},
		{"ARCHIPIÉLAGO DE SAN ANDRÉS", "ARCHIPIELAGO DE SAN ANDRES"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "X954", NormalizeCode(" x954 "))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestPadCode(t *testing.T) {
	tests := []struct {
		raw    string
		width  int
		want   string
		wantOK bool
	}{
		{"5", 2, "05", true},
		{"05", 2, "05", true},
		{"5.0", 2, "05", true},
		{" 5 ", 2, "05", true},
		{"76", 2, "76", true},
		{"5001", 5, "05001", true},
		{"123", 2, "123", true},
		{"5.5", 2, "", false},
		{"-1", 2, "", false},
		{"", 2, "", false},
		{"abc", 2, "", false},
		{"0x10", 2, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := PadCode(tt.raw, tt.width)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"12", 12, true},
		{" 3.5 ", 3.5, true},
		{"-2", -2, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1_000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeBand(t *testing.T) {
	tests := []struct {
		age  float64
		want string
	}{
		{0, "0-4"},
		{4, "0-4"},
		{4.9, "0-4"},
		{5, "5-9"},
		{42, "40-44"},
		{84, "80-84"},
		{85, "85+"},
		{120, "85+"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBand(tt.age), "age %v", tt.age)
	}
}

func TestAgeBand_PartitionsAges(t *testing.T) {
	seen := map[string]bool{}
	for age := 0; age <= 110; age++ {
		seen[AgeBand(float64(age))] = true
	}
	// 17 closed bands plus 85+
	assert.Len(t, seen, 18)
}

func TestAgeBandLowerBound(t *testing.T) {
	assert.Equal(t, 0, ageBandLowerBound("0-4"))
	assert.Equal(t, 80, ageBandLowerBound("80-84"))
	assert.Equal(t, 85, ageBandLowerBound("85+"))
	assert.Less(t, ageBandLowerBound("85+"), ageBandLowerBound("garbage"))
}
