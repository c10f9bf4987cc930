package repository

import "testing"

func TestReceiptSortClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"defaults", "", "", "received_at DESC"},
		{"known column ascending", "net_weight", "asc", "net_weight ASC"},
		{"known column uppercase order", "status", "ASC", "status ASC"},
		{"unknown column falls back", "password", "ASC", "received_at ASC"},
		{"injection attempt falls back", "id; DROP TABLE receipts--", "DESC", "received_at DESC"},
		{"unknown order falls back", "created_at", "sideways", "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := receiptSortClause(tt.sortBy, tt.sortOrder); got != tt.want {
				t.Errorf("receiptSortClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortOrder, got, tt.want)
			}
		})
	}
}
