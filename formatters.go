package voxnova

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatNumber renders a numeric value for a locale according to the
// style and fraction-digit options. It never fails: unknown currency
// codes degrade to "CODE amount".
func formatNumber(locale string, value float64, opts NumberOptions) string {
	switch opts.Style {
	case StyleCurrency:
		return formatCurrencyAmount(locale, value, opts)
	case StylePercent:
		return formatPercentValue(locale, value, opts)
	default:
		return formatDecimal(locale, value, opts.MinFraction, opts.MaxFraction)
	}
}

func formatDecimal(locale string, value float64, minFraction, maxFraction *int) string {
	printer := message.NewPrinter(language.Make(locale))
	return printer.Sprintf("%v", number.Decimal(value, fractionOptions(minFraction, maxFraction)...))
}

func formatPercentValue(locale string, value float64, opts NumberOptions) string {
	minFraction, maxFraction := opts.MinFraction, opts.MaxFraction
	if minFraction == nil && maxFraction == nil {
		zero := 0
		minFraction, maxFraction = &zero, &zero
	}
	printer := message.NewPrinter(language.Make(locale))
	return printer.Sprintf("%v", number.Percent(value, fractionOptions(minFraction, maxFraction)...))
}

func formatCurrencyAmount(locale string, value float64, opts NumberOptions) string {
	minFraction, maxFraction := opts.MinFraction, opts.MaxFraction

	code := strings.ToUpper(strings.TrimSpace(opts.Currency))
	if code == "" {
		if minFraction == nil && maxFraction == nil {
			two := 2
			minFraction, maxFraction = &two, &two
		}
		return formatDecimal(locale, value, minFraction, maxFraction)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		if minFraction == nil && maxFraction == nil {
			two := 2
			minFraction, maxFraction = &two, &two
		}
		return code + " " + formatDecimal(locale, value, minFraction, maxFraction)
	}

	// each currency carries its own fraction-digit convention (JPY and
	// VND have none); declared options override it
	scale, _ := currency.Standard.Rounding(unit)
	if minFraction == nil && maxFraction == nil {
		minFraction, maxFraction = &scale, &scale
	}
	amount := formatDecimal(locale, value, minFraction, maxFraction)

	symbol := currencySymbol(locale, unit, value, scale)
	if symbol == unit.String() {
		return symbol + " " + amount
	}

	rules := lookupFormattingRules(locale)
	pattern := rules.CurrencyRules.Pattern
	if pattern == "" {
		pattern = "{symbol}{amount}"
	}
	out := strings.ReplaceAll(pattern, "{symbol}", symbol)
	return strings.ReplaceAll(out, "{amount}", amount)
}

// currencySymbol derives the display symbol from the x/text currency
// rendering by stripping the formatted amount back out of it.
func currencySymbol(locale string, unit currency.Unit, value float64, scale int) string {
	opts := []number.Option{number.MinFractionDigits(scale), number.MaxFractionDigits(scale)}

	extract := func(printer *message.Printer) string {
		full := printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
		amount := printer.Sprintf("%v", number.Decimal(value, opts...))
		return strings.TrimSpace(strings.ReplaceAll(full, amount, ""))
	}

	symbol := extract(message.NewPrinter(language.Make(locale)))
	if symbol == "" || symbol == unit.String() {
		// the English printer carries symbol data for most currencies
		if english := extract(message.NewPrinter(language.English)); english != "" {
			symbol = english
		}
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return symbol
}

func fractionOptions(minFraction, maxFraction *int) []number.Option {
	var opts []number.Option
	if minFraction != nil {
		opts = append(opts, number.MinFractionDigits(*minFraction))
	}
	if maxFraction != nil {
		opts = append(opts, number.MaxFractionDigits(*maxFraction))
	}
	return opts
}

// formatDate renders a time for a locale according to the date/time style
// options.
func formatDate(locale string, t time.Time, opts DateOptions) string {
	rules := lookupFormattingRules(locale)

	dateStyle := opts.DateStyle
	if dateStyle == "" {
		dateStyle = DateMedium
	}

	out := applyDatePattern(datePattern(rules, dateStyle), rules, t)
	if opts.TimeStyle != "" {
		out += " " + formatTimeOfDay(rules, t, opts.TimeStyle)
	}
	return out
}

func datePattern(rules FormattingRules, style DateStyle) string {
	switch style {
	case DateShort:
		return rules.DatePatterns.Short
	case DateLong:
		return rules.DatePatterns.Long
	case DateFull:
		return rules.DatePatterns.Full
	default:
		return rules.DatePatterns.Medium
	}
}

func applyDatePattern(pattern string, rules FormattingRules, t time.Time) string {
	month := int(t.Month())
	out := strings.ReplaceAll(pattern, "{monthShort}", rules.MonthAbbrevs[month-1])
	out = strings.ReplaceAll(out, "{monthName}", rules.MonthNames[month-1])
	out = strings.ReplaceAll(out, "{month}", strconv.Itoa(month))
	out = strings.ReplaceAll(out, "{weekday}", rules.WeekdayNames[int(t.Weekday())])
	out = strings.ReplaceAll(out, "{day}", strconv.Itoa(t.Day()))
	return strings.ReplaceAll(out, "{year}", strconv.Itoa(t.Year()))
}

func formatTimeOfDay(rules FormattingRules, t time.Time, style DateStyle) string {
	if rules.TimeFormat.Use24Hour {
		if style == DateShort {
			return t.Format("15:04")
		}
		return t.Format("15:04:05")
	}
	if style == DateShort {
		return t.Format("3:04 PM")
	}
	return t.Format("3:04:05 PM")
}

// formatList joins items with the locale's list patterns.
func formatList(locale string, items []string, opts ListOptions) string {
	bundle := lookupListBundle(locale)
	patterns := bundle.And
	if opts.Style == ListDisjunction {
		patterns = bundle.Or
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return applyListPattern(patterns.Pair, items[0], items[1])
	default:
		result := applyListPattern(patterns.Start, items[0], items[1])
		for i := 2; i < len(items)-1; i++ {
			result = applyListPattern(patterns.Middle, result, items[i])
		}
		return applyListPattern(patterns.End, result, items[len(items)-1])
	}
}

func applyListPattern(pattern, head, tail string) string {
	result := strings.ReplaceAll(pattern, "{0}", head)
	return strings.ReplaceAll(result, "{1}", tail)
}

// FormatNumber renders a number for a locale using the given options.
func FormatNumber(locale string, value float64, opts NumberOptions) string {
	return formatNumber(locale, value, opts)
}

// FormatCurrency renders an amount in the given ISO 4217 currency.
func FormatCurrency(locale string, amount float64, code string) string {
	return formatNumber(locale, amount, NumberOptions{Style: StyleCurrency, Currency: code})
}

// FormatPercent renders a ratio as a percentage (0.5 becomes 50%).
func FormatPercent(locale string, value float64) string {
	return formatNumber(locale, value, NumberOptions{Style: StylePercent})
}

// FormatDate renders a date with the locale's pattern for the given style.
func FormatDate(locale string, t time.Time, style DateStyle) string {
	return formatDate(locale, t, DateOptions{DateStyle: style})
}

// FormatDateTime renders date and time with the locale's patterns.
func FormatDateTime(locale string, t time.Time, style DateStyle) string {
	return formatDate(locale, t, DateOptions{DateStyle: style, TimeStyle: style})
}

// FormatList joins items as a locale-aware conjunctive list.
func FormatList(locale string, items []string) string {
	return formatList(locale, items, ListOptions{})
}
