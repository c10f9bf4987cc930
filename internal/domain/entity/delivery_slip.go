package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliverySlip records the physical dispatch of a fully paid receipt.
// It carries no derived financial fields.
type DeliverySlip struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"receipt_id"`
	DeliveryDate   time.Time `gorm:"not null" json:"delivery_date"`
	DeparturePlace string    `gorm:"size:255;not null" json:"departure_place"`
	Destination    string    `gorm:"size:255;not null" json:"destination"`

	// Deliverer identity and vehicle
	DelivererLastName  string `gorm:"size:255;not null" json:"deliverer_last_name"`
	DelivererFirstName string `gorm:"size:255;not null" json:"deliverer_first_name"`
	DelivererPhone     string `gorm:"size:255;not null" json:"deliverer_phone"`
	DelivererVehicle   string `gorm:"size:255;not null" json:"deliverer_vehicle"`

	// Consignor identity
	ConsignorLastName  string `gorm:"size:255;not null" json:"consignor_last_name"`
	ConsignorFirstName string `gorm:"size:255;not null" json:"consignor_first_name"`
	ConsignorRole      string `gorm:"size:255;not null" json:"consignor_role"`
	ConsignorContact   string `gorm:"size:255;not null" json:"consignor_contact"`

	// ProductCategory is a free-text category (Cloves/Claws/Leaves), distinct
	// from the receipt's product code.
	ProductCategory string  `gorm:"size:50;not null" json:"product_category"`
	NetWeight       float64 `gorm:"type:decimal(10,2);not null" json:"net_weight"`
	RegionalRebate  float64 `gorm:"type:decimal(10,2);default:0" json:"regional_rebate"`
	CommunalRebate  float64 `gorm:"type:decimal(10,2);default:0" json:"communal_rebate"`

	// Stock release
	UnitPrice         float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	QuantityToDeliver float64 `gorm:"type:decimal(10,2);not null" json:"quantity_to_deliver"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"receipt,omitempty"`
}

// BeforeCreate generates a UUID before creating a new delivery slip
func (d *DeliverySlip) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DeliverySlip model
func (DeliverySlip) TableName() string {
	return "delivery_slips"
}
