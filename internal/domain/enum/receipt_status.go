package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReceiptStatus represents where a receipt sits in its payment-and-delivery
// lifecycle. A receipt starts Unpaid and ends Delivered.
type ReceiptStatus int

const (
	ReceiptStatusUnpaid           ReceiptStatus = 0
	ReceiptStatusPartiallyPaid    ReceiptStatus = 1
	ReceiptStatusPaid             ReceiptStatus = 2
	ReceiptStatusAwaitingDelivery ReceiptStatus = 3
	ReceiptStatusDelivered        ReceiptStatus = 4
)

func (s ReceiptStatus) String() string {
	return [...]string{"Unpaid", "Partially Paid", "Paid", "Awaiting Delivery", "Delivered"}[s]
}

// Valid reports whether s is one of the five lifecycle statuses.
func (s ReceiptStatus) Valid() bool {
	return s >= ReceiptStatusUnpaid && s <= ReceiptStatusDelivered
}

func (s ReceiptStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReceiptStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReceiptStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = ReceiptStatusUnpaid
	case "Partially Paid":
		*s = ReceiptStatusPartiallyPaid
	case "Paid":
		*s = ReceiptStatusPaid
	case "Awaiting Delivery":
		*s = ReceiptStatusAwaitingDelivery
	case "Delivered":
		*s = ReceiptStatusDelivered
	}
	return nil
}

func (s ReceiptStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReceiptStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReceiptStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReceiptStatus(v)
	case int:
		*s = ReceiptStatus(v)
	}
	return nil
}

// ParseReceiptStatus maps a status label to its enum value.
func ParseReceiptStatus(s string) (ReceiptStatus, bool) {
	switch s {
	case "Unpaid":
		return ReceiptStatusUnpaid, true
	case "Partially Paid":
		return ReceiptStatusPartiallyPaid, true
	case "Paid":
		return ReceiptStatusPaid, true
	case "Awaiting Delivery":
		return ReceiptStatusAwaitingDelivery, true
	case "Delivered":
		return ReceiptStatusDelivered, true
	}
	return ReceiptStatusUnpaid, false
}
