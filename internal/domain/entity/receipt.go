package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transition names reported by AvailableTransitions and used as route actions.
const (
	TransitionBilling      = "billing"
	TransitionAdjustment   = "adjustment"
	TransitionDeliverySlip = "delivery_slip"
	TransitionDeliver      = "deliver"
)

// Receipt records one physical intake of raw material. It owns at most one
// billing, one balance adjustment and one delivery slip, and moves through
// the payment-and-delivery lifecycle via its Status.
type Receipt struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Type        enum.ProductType `gorm:"size:2;not null;index" json:"type"`
	ReceivedAt  time.Time        `gorm:"not null" json:"received_at"`
	Designation string           `gorm:"size:255;not null" json:"designation"`
	Origin      string           `gorm:"size:255;not null" json:"origin"`

	// Supplier identity
	SupplierLastName  string `gorm:"size:255;not null" json:"supplier_last_name"`
	SupplierFirstName string `gorm:"size:255;not null" json:"supplier_first_name"`
	SupplierTaxID     string `gorm:"size:255;not null" json:"supplier_tax_id"`
	SupplierLocation  string `gorm:"size:255;not null" json:"supplier_location"`
	SupplierContact   string `gorm:"size:255;not null" json:"supplier_contact"`

	// Weights, common to all product types
	GrossWeight *float64 `gorm:"type:decimal(10,2)" json:"gross_weight,omitempty"`
	NetWeight   *float64 `gorm:"type:decimal(10,2)" json:"net_weight,omitempty"`
	Unit        string   `gorm:"size:10;default:'Kg'" json:"unit"`

	// Quality metrics for cloves (FG)
	PackagingWeight *float64 `gorm:"type:decimal(10,2)" json:"packaging_weight,omitempty"`
	DesiccationRate *float64 `gorm:"type:decimal(5,2)" json:"desiccation_rate,omitempty"`
	HumidityRateFG  *float64 `gorm:"type:decimal(5,2)" json:"humidity_rate_fg,omitempty"`

	// Quality metrics for claws (GG)
	ApprovedWeight *float64 `gorm:"type:decimal(10,2)" json:"approved_weight,omitempty"`
	Density        *float64 `gorm:"type:decimal(10,2)" json:"density,omitempty"`

	// Quality metrics for leaves (CG)
	HumidityRateCG *float64 `gorm:"type:decimal(5,2)" json:"humidity_rate_cg,omitempty"`

	Status    enum.ReceiptStatus `gorm:"not null;default:0;index" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// Relationships
	Billing      *Billing      `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"billing,omitempty"`
	Adjustment   *Adjustment   `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"adjustment,omitempty"`
	DeliverySlip *DeliverySlip `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"delivery_slip,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// CanCreateBilling reports whether a billing may be created: only while the
// receipt is still unpaid.
func (r *Receipt) CanCreateBilling() bool {
	return r.Status == enum.ReceiptStatusUnpaid
}

// CanCreateAdjustment reports whether a balance adjustment may be created:
// from unpaid or partially paid.
func (r *Receipt) CanCreateAdjustment() bool {
	return r.Status == enum.ReceiptStatusUnpaid || r.Status == enum.ReceiptStatusPartiallyPaid
}

// CanCreateDeliverySlip reports whether a delivery slip may be created:
// only once fully paid.
func (r *Receipt) CanCreateDeliverySlip() bool {
	return r.Status == enum.ReceiptStatusPaid
}

// CanDeliver reports whether the receipt is waiting to be marked delivered.
// The deliver endpoints themselves do not enforce this guard; marking a
// receipt delivered is allowed from any status and is idempotent.
func (r *Receipt) CanDeliver() bool {
	return r.Status == enum.ReceiptStatusAwaitingDelivery
}

// AvailableTransitions evaluates every guard independently and returns the
// names of the transitions that currently hold. A delivered receipt has none.
func (r *Receipt) AvailableTransitions() []string {
	transitions := []string{}

	if r.CanCreateBilling() {
		transitions = append(transitions, TransitionBilling)
	}
	if r.CanCreateAdjustment() {
		transitions = append(transitions, TransitionAdjustment)
	}
	if r.CanCreateDeliverySlip() {
		transitions = append(transitions, TransitionDeliverySlip)
	}
	if r.CanDeliver() {
		transitions = append(transitions, TransitionDeliver)
	}

	return transitions
}
