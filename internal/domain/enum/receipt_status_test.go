package enum

import (
	"encoding/json"
	"testing"
)

func TestReceiptStatusString(t *testing.T) {
	tests := []struct {
		status ReceiptStatus
		want   string
	}{
		{ReceiptStatusUnpaid, "Unpaid"},
		{ReceiptStatusPartiallyPaid, "Partially Paid"},
		{ReceiptStatusPaid, "Paid"},
		{ReceiptStatusAwaitingDelivery, "Awaiting Delivery"},
		{ReceiptStatusDelivered, "Delivered"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestReceiptStatusJSONRoundTrip(t *testing.T) {
	for _, status := range []ReceiptStatus{
		ReceiptStatusUnpaid,
		ReceiptStatusPartiallyPaid,
		ReceiptStatusPaid,
		ReceiptStatusAwaitingDelivery,
		ReceiptStatusDelivered,
	} {
		data, err := json.Marshal(status)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", status, err)
		}

		var decoded ReceiptStatus
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if decoded != status {
			t.Errorf("round trip of %v produced %v", status, decoded)
		}
	}
}

func TestParseReceiptStatus(t *testing.T) {
	if status, ok := ParseReceiptStatus("Awaiting Delivery"); !ok || status != ReceiptStatusAwaitingDelivery {
		t.Errorf("ParseReceiptStatus(\"Awaiting Delivery\") = %v, %v", status, ok)
	}
	if _, ok := ParseReceiptStatus("Shipped"); ok {
		t.Error("ParseReceiptStatus accepted an unknown label")
	}
}
