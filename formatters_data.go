package voxnova

// FormattingRules contains locale-specific date, time, and currency
// rendering patterns. Date patterns use the placeholders {day}, {month},
// {monthShort}, {monthName}, {year}, and {weekday}.
type FormattingRules struct {
	Locale        string
	DatePatterns  DatePatternRules
	CurrencyRules CurrencyFormatRules
	MonthNames    []string
	MonthAbbrevs  []string
	WeekdayNames  []string
	TimeFormat    TimeFormatRules
}

// DatePatternRules holds one pattern per date style width.
type DatePatternRules struct {
	Short  string
	Medium string
	Long   string
	Full   string
}

// CurrencyFormatRules defines how a currency amount and symbol combine.
// Pattern uses the placeholders {symbol} and {amount}.
type CurrencyFormatRules struct {
	Pattern string
}

// TimeFormatRules defines time-of-day formatting.
type TimeFormatRules struct {
	Use24Hour bool
}

// listPatterns are CLDR list join patterns; {0} is the accumulated head
// and {1} the next item.
type listPatterns struct {
	Pair   string
	Start  string
	Middle string
	End    string
}

type listBundle struct {
	And listPatterns
	Or  listPatterns
}

// formattingRulesData holds the built-in formatting rules. Generated CLDR
// data could replace these tables without changing the lookup path.
var formattingRulesData = map[string]FormattingRules{
	"en": {
		Locale: "en",
		DatePatterns: DatePatternRules{
			Short:  "{month}/{day}/{year}",
			Medium: "{monthShort} {day}, {year}",
			Long:   "{monthName} {day}, {year}",
			Full:   "{weekday}, {monthName} {day}, {year}",
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern: "{symbol}{amount}",
		},
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrevs: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		WeekdayNames: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		TimeFormat: TimeFormatRules{Use24Hour: false},
	},
	"es": {
		Locale: "es",
		DatePatterns: DatePatternRules{
			Short:  "{day}/{month}/{year}",
			Medium: "{day} {monthShort} {year}",
			Long:   "{day} de {monthName} de {year}",
			Full:   "{weekday}, {day} de {monthName} de {year}",
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern: "{amount} {symbol}",
		},
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthAbbrevs: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		WeekdayNames: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		TimeFormat: TimeFormatRules{Use24Hour: true},
	},
	"fr": {
		Locale: "fr",
		DatePatterns: DatePatternRules{
			Short:  "{day}/{month}/{year}",
			Medium: "{day} {monthShort} {year}",
			Long:   "{day} {monthName} {year}",
			Full:   "{weekday} {day} {monthName} {year}",
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern: "{amount} {symbol}",
		},
		MonthNames: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthAbbrevs: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		WeekdayNames: []string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		TimeFormat: TimeFormatRules{Use24Hour: true},
	},
	"de": {
		Locale: "de",
		DatePatterns: DatePatternRules{
			Short:  "{day}.{month}.{year}",
			Medium: "{day}. {monthShort} {year}",
			Long:   "{day}. {monthName} {year}",
			Full:   "{weekday}, {day}. {monthName} {year}",
		},
		CurrencyRules: CurrencyFormatRules{
			Pattern: "{amount} {symbol}",
		},
		MonthNames: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbrevs: []string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		WeekdayNames: []string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		TimeFormat: TimeFormatRules{Use24Hour: true},
	},
}

var listBundles = map[string]listBundle{
	"en": {
		And: listPatterns{
			Pair:   "{0} and {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, and {1}",
		},
		Or: listPatterns{
			Pair:   "{0} or {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, or {1}",
		},
	},
	"es": {
		And: listPatterns{
			Pair:   "{0} y {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} y {1}",
		},
		Or: listPatterns{
			Pair:   "{0} o {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} o {1}",
		},
	},
	"fr": {
		And: listPatterns{
			Pair:   "{0} et {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} et {1}",
		},
		Or: listPatterns{
			Pair:   "{0} ou {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} ou {1}",
		},
	},
	"de": {
		And: listPatterns{
			Pair:   "{0} und {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} und {1}",
		},
		Or: listPatterns{
			Pair:   "{0} oder {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} oder {1}",
		},
	},
}

// lookupFormattingRules resolves the rules for a locale, walking parent
// tags before falling back to the English tables.
func lookupFormattingRules(locale string) FormattingRules {
	for _, candidate := range expandLocale(locale) {
		if rules, ok := formattingRulesData[candidate]; ok {
			return rules
		}
	}
	return formattingRulesData["en"]
}

func lookupListBundle(locale string) listBundle {
	for _, candidate := range expandLocale(locale) {
		if bundle, ok := listBundles[candidate]; ok {
			return bundle
		}
	}
	return listBundles["en"]
}
