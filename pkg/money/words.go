package money

import "strings"

// Number words for amounts below one hundred. Teens get their own table
// because they do not compose from tens + ones.
var (
	onesWords = [...]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = [...]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

const (
	crore    = 1_00_00_000
	lakh     = 1_00_000
	thousand = 1_000
)

// AmountInWords converts a whole rupee amount into words on the Indian
// numbering scale (crore, lakh, thousand, hundred). The result has no
// leading or trailing space; zero renders as "Zero". Fractional paise
// must be truncated or rounded before calling.
func AmountInWords(amount int64) string {
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}
	return strings.Join(wordSegments(amount), " ")
}

func wordSegments(n int64) []string {
	var out []string

	if n >= crore {
		out = append(out, wordSegments(n/crore)...)
		out = append(out, "Crore")
		n %= crore
	}
	if n >= lakh {
		out = append(out, twoDigitWords(n/lakh)...)
		out = append(out, "Lakh")
		n %= lakh
	}
	if n >= thousand {
		out = append(out, twoDigitWords(n/thousand)...)
		out = append(out, "Thousand")
		n %= thousand
	}
	if n >= 100 {
		out = append(out, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n > 0 {
		out = append(out, twoDigitWords(n)...)
	}
	return out
}

func twoDigitWords(n int64) []string {
	if n < 20 {
		return []string{onesWords[n]}
	}
	if n%10 == 0 {
		return []string{tensWords[n/10]}
	}
	return []string{tensWords[n/10], onesWords[n%10]}
}
