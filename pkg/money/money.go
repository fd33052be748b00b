package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTaxRateBps is the GST rate applied to invoice subtotals,
// expressed in basis points (1800 = 18%).
const DefaultTaxRateBps int64 = 1800

// Paise is a monetary amount in paise (1/100 rupee), stored as an integer
// to keep monetary sums exact. All arithmetic in this package operates on
// Paise; conversion to and from decimal rupees happens only at the wire
// and display boundaries.
type Paise int64

var hundred = decimal.NewFromInt(100)

// FromDecimal converts a rupee amount to Paise, rounding half away from
// zero to the nearest paisa.
func FromDecimal(d decimal.Decimal) Paise {
	return Paise(d.Mul(hundred).Round(0).IntPart())
}

// FromRupees converts a whole rupee amount to Paise.
func FromRupees(r int64) Paise {
	return Paise(r * 100)
}

// ParseAmount converts a decimal string such as "1500.00" to Paise.
func ParseAmount(s string) (Paise, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return FromDecimal(d), nil
}

// Decimal returns the amount as decimal rupees.
func (p Paise) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -2)
}

// Rupees returns the whole-rupee part, truncating paise. Used for the
// amount-in-words line on printed documents.
func (p Paise) Rupees() int64 {
	return int64(p) / 100
}

// String formats the amount as plain decimal rupees, e.g. "2950.00".
func (p Paise) String() string {
	return p.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount as an unquoted decimal number with two
// places, matching the wire contract ("rate": 1500.00).
func (p Paise) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (p *Paise) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*p = 0
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*p = FromDecimal(d)
	return nil
}

// LineAmount returns quantity times rate for a single invoice line.
func LineAmount(quantity int, rate Paise) Paise {
	return Paise(int64(quantity) * int64(rate))
}

// Subtotal sums a sequence of line amounts.
func Subtotal(amounts []Paise) Paise {
	var sum Paise
	for _, a := range amounts {
		sum += a
	}
	return sum
}

// Tax computes the tax on a subtotal at the given rate in basis points,
// rounding half up to the nearest paisa.
func Tax(subtotal Paise, rateBps int64) Paise {
	n := int64(subtotal) * rateBps
	if n >= 0 {
		return Paise((n + 5000) / 10000)
	}
	return Paise((n - 5000) / 10000)
}

// Total is the invoice grand total.
func Total(subtotal, tax Paise) Paise {
	return subtotal + tax
}

// FormatINR renders the amount with the rupee sign and Indian digit
// grouping, e.g. "₹1,23,456.78".
func FormatINR(p Paise) string {
	d := p.Decimal().StringFixed(2)
	neg := strings.HasPrefix(d, "-")
	d = strings.TrimPrefix(d, "-")

	whole, frac, _ := strings.Cut(d, ".")
	grouped := groupIndian(whole)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// groupIndian inserts commas in the Indian pattern: the last three digits
// form one group, every two digits after that form another (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
