package dataprocessing

import (
	"strings"

	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// Directory maps a normalized code to exactly one name
type Directory struct {
	entries map[string]string
}

// Lookup returns the name for code. ok is false for unknown codes.
func (d *Directory) Lookup(code string) (name string, ok bool) {
	if d == nil {
		return "", false
	}
	name, ok = d.entries[code]
	return name, ok
}

// Len returns the number of codes
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

type nameVariant struct {
	code  string
	name  string
	count int
}

// resolveMostFrequent keeps, for every code, the name variant seen most
// often. Ties go to the variant seen first. Empty codes are ignored.
func resolveMostFrequent(pairs func(emit func(code, name string))) *Directory {
	var variants []*nameVariant
	byPair := make(map[[2]string]*nameVariant)

	pairs(func(code, name string) {
		if code == "" {
			return
		}
		key := [2]string{code, name}
		v, ok := byPair[key]
		if !ok {
			v = &nameVariant{code: code, name: name}
			byPair[key] = v
			variants = append(variants, v)
		}
		v.count++
	})

	// Ties keep the first-seen spelling, not the alphabetically smallest one
	best := make(map[string]*nameVariant)
	for _, v := range variants {
		if cur, ok := best[v.code]; !ok || v.count > cur.count {
			best[v.code] = v
		}
	}

	d := &Directory{entries: make(map[string]string, len(best))}
	for code, v := range best {
		d.entries[code] = v.name
	}
	return d
}

// ResolveDepartments builds the canonical department name directory.
// Names are counted as spelled in the table and the winner is normalized.
func ResolveDepartments(divisions []domain.DivisionEntry) *Directory {
	d := resolveMostFrequent(func(emit func(code, name string)) {
		for _, e := range divisions {
			emit(e.DepartmentCode, e.DepartmentName)
		}
	})
	for code, name := range d.entries {
		d.entries[code] = NormalizeText(name)
	}
	return d
}

// ResolveMunicipalities builds the municipality directory keyed by the five
// digit DANE code
func ResolveMunicipalities(divisions []domain.DivisionEntry) *Directory {
	d := resolveMostFrequent(func(emit func(code, name string)) {
		for _, e := range divisions {
			emit(e.MunicipalityCode, strings.TrimSpace(e.MunicipalityName))
		}
	})
	return d
}

// ResolveCauses builds the cause description directory. The first entry of
// a duplicated code wins.
func ResolveCauses(causes []domain.CauseCodeEntry) *Directory {
	d := &Directory{entries: make(map[string]string, len(causes))}
	for _, c := range causes {
		code := NormalizeCode(c.Code)
		if code == "" {
			continue
		}
		if _, seen := d.entries[code]; !seen {
			d.entries[code] = strings.TrimSpace(c.Description)
		}
	}
	return d
}
