package dataprocessing

// Month name locales
const (
	LocaleSpanish = "es"
	LocaleEnglish = "en"
)

var monthNames = map[string][12]string{
	LocaleSpanish: {
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},
	LocaleEnglish: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// MonthNames returns the twelve month labels of locale, uppercased and free
// of diacritics. Unknown locales fall back to Spanish.
func MonthNames(locale string) [12]string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[LocaleSpanish]
	}
	var labels [12]string
	for i, name := range names {
		labels[i] = NormalizeText(name)
	}
	return labels
}
