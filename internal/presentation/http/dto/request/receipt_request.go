package request

import "time"

// CreateReceiptRequest represents the create receipt request payload
type CreateReceiptRequest struct {
	Type              string    `json:"type" binding:"required"`
	ReceivedAt        time.Time `json:"received_at" binding:"required"`
	Designation       string    `json:"designation" binding:"required"`
	Origin            string    `json:"origin" binding:"required"`
	SupplierLastName  string    `json:"supplier_last_name" binding:"required"`
	SupplierFirstName string    `json:"supplier_first_name" binding:"required"`
	SupplierTaxID     string    `json:"supplier_tax_id" binding:"required"`
	SupplierLocation  string    `json:"supplier_location" binding:"required"`
	SupplierContact   string    `json:"supplier_contact" binding:"required"`
	GrossWeight       float64   `json:"gross_weight" binding:"required,gt=0"`
	NetWeight         float64   `json:"net_weight" binding:"required,gt=0"`
	Unit              string    `json:"unit"`
	PackagingWeight   *float64  `json:"packaging_weight"`
	DesiccationRate   *float64  `json:"desiccation_rate"`
	HumidityRateFG    *float64  `json:"humidity_rate_fg"`
	ApprovedWeight    *float64  `json:"approved_weight"`
	Density           *float64  `json:"density"`
	HumidityRateCG    *float64  `json:"humidity_rate_cg"`
}

// UpdateReceiptRequest represents the partial receipt update payload
type UpdateReceiptRequest struct {
	Type              *string    `json:"type"`
	ReceivedAt        *time.Time `json:"received_at"`
	Designation       *string    `json:"designation"`
	Origin            *string    `json:"origin"`
	SupplierLastName  *string    `json:"supplier_last_name"`
	SupplierFirstName *string    `json:"supplier_first_name"`
	SupplierTaxID     *string    `json:"supplier_tax_id"`
	SupplierLocation  *string    `json:"supplier_location"`
	SupplierContact   *string    `json:"supplier_contact"`
	GrossWeight       *float64   `json:"gross_weight"`
	NetWeight         *float64   `json:"net_weight"`
	Unit              *string    `json:"unit"`
	PackagingWeight   *float64   `json:"packaging_weight"`
	DesiccationRate   *float64   `json:"desiccation_rate"`
	HumidityRateFG    *float64   `json:"humidity_rate_fg"`
	ApprovedWeight    *float64   `json:"approved_weight"`
	Density           *float64   `json:"density"`
	HumidityRateCG    *float64   `json:"humidity_rate_cg"`
}

// ReceiptFilterRequest represents receipt list query parameters
type ReceiptFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	Type      string `form:"type"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// DeliverBatchRequest represents the bulk delivery confirmation payload
type DeliverBatchRequest struct {
	ReceiptIDs []string `json:"receipt_ids" binding:"required,min=1"`
}
