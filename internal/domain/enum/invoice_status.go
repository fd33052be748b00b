package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the payment state of a persisted invoice.
// It is assigned at creation time from the payment flow outcome; the POS
// terminal never transitions it afterwards, it only re-fetches.
type InvoiceStatus int

const (
	InvoiceStatusDue     InvoiceStatus = 0
	InvoiceStatusPaid    InvoiceStatus = 1
	InvoiceStatusPartial InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	names := [...]string{"DUE", "PAID", "PARTIAL"}
	if int(s) < 0 || int(s) >= len(names) {
		return "DUE"
	}
	return names[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "PAID":
		*s = InvoiceStatusPaid
	case "PARTIAL":
		*s = InvoiceStatusPartial
	default:
		*s = InvoiceStatusDue
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDue
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
