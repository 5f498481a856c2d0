package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims, strips diacritics and uppercases a name.
// "Bogotá, D.C." becomes "BOGOTA, D.C.".
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		result = strings.TrimSpace(s)
	}
	return strings.ToUpper(result)
}

// NormalizeCode trims and uppercases a cause code
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// PadCode coerces raw to a non-negative integer and zero-pads it to width.
// "5", "05", "5.0" and " 5 " all give "05" for width 2. Values wider than
// width are kept whole.
func PadCode(raw string, width int) (string, bool) {
	v, ok := ParseNumber(raw)
	if !ok || v < 0 || v != math.Trunc(v) || v > math.MaxInt64 {
		return "", false
	}
	return fmt.Sprintf("%0*d", width, int64(v)), true
}

// ParseNumber coerces a cell to a number. Blanks, text, NaN and infinities
// are not numbers.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseWhole coerces a cell to an integer, rejecting fractional values
func parseWhole(raw string) (int, bool) {
	v, ok := ParseNumber(raw)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// AgeBand returns the quinquennial band of a non-negative age: 0-4, 5-9, ...,
// 80-84 and 85+ for everything from 85 up.
func AgeBand(age float64) string {
	if age >= OpenAgeBandStart {
		return OpenAgeBandLabel
	}
	start := int(math.Floor(age/AgeBandWidth)) * AgeBandWidth
	return fmt.Sprintf("%d-%d", start, start+AgeBandWidth-1)
}

// ageBandLowerBound orders band labels; unknown labels sort last
func ageBandLowerBound(label string) int {
	if label == OpenAgeBandLabel {
		return OpenAgeBandStart
	}
	lower, _, found := strings.Cut(label, "-")
	if !found {
		return math.MaxInt
	}
	n, err := strconv.Atoi(lower)
	if err != nil {
		return math.MaxInt
	}
	return n
}
