package response

import (
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/pkg/money"
)

// Computations is the derived-figures block returned alongside billing and
// adjustment payloads so clients never recompute financial rules themselves.
type Computations struct {
	TotalPrice    float64  `json:"total_price"`
	BalanceDue    float64  `json:"balance_due"`
	UnpaidBalance float64  `json:"unpaid_balance"`
	FullyPaid     bool     `json:"fully_paid"`
	PercentPaid   *float64 `json:"percent_paid,omitempty"`
}

// BillingResponse wraps a billing with its computed figures and the receipt
// status that resulted from the operation.
type BillingResponse struct {
	Billing       *entity.Billing `json:"billing"`
	ReceiptStatus string          `json:"receipt_status,omitempty"`
	Computations  Computations    `json:"computations"`
}

// NewBillingResponse builds a billing payload. A zero status omits the
// receipt_status field for plain reads.
func NewBillingResponse(billing *entity.Billing, status enum.ReceiptStatus, withStatus bool) *BillingResponse {
	percent := money.Round2(billing.PercentPaid())
	resp := &BillingResponse{
		Billing: billing,
		Computations: Computations{
			TotalPrice:    billing.ComputeTotalPrice(),
			BalanceDue:    billing.BalanceDue(),
			UnpaidBalance: billing.UnpaidBalance(),
			FullyPaid:     billing.FullyPaid(),
			PercentPaid:   &percent,
		},
	}
	if withStatus {
		resp.ReceiptStatus = status.String()
	}
	return resp
}

// AdjustmentResponse wraps an adjustment with its computed figures and the
// receipt status that resulted from the operation.
type AdjustmentResponse struct {
	Adjustment    *entity.Adjustment `json:"adjustment"`
	ReceiptStatus string             `json:"receipt_status,omitempty"`
	Computations  Computations       `json:"computations"`
}

// NewAdjustmentResponse builds an adjustment payload.
func NewAdjustmentResponse(adjustment *entity.Adjustment, status enum.ReceiptStatus, withStatus bool) *AdjustmentResponse {
	resp := &AdjustmentResponse{
		Adjustment: adjustment,
		Computations: Computations{
			TotalPrice:    adjustment.ComputeTotalPrice(),
			BalanceDue:    adjustment.BalanceDue(),
			UnpaidBalance: adjustment.UnpaidBalance(),
			FullyPaid:     adjustment.FullyPaid(),
		},
	}
	if withStatus {
		resp.ReceiptStatus = status.String()
	}
	return resp
}
