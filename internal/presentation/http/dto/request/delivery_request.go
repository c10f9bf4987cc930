package request

import "time"

// CreateDeliverySlipRequest represents the create delivery slip request payload
type CreateDeliverySlipRequest struct {
	ReceiptID          string    `json:"receipt_id" binding:"required,uuid"`
	DeliveryDate       time.Time `json:"delivery_date" binding:"required"`
	DeparturePlace     string    `json:"departure_place" binding:"required"`
	Destination        string    `json:"destination" binding:"required"`
	DelivererLastName  string    `json:"deliverer_last_name" binding:"required"`
	DelivererFirstName string    `json:"deliverer_first_name"`
	DelivererPhone     string    `json:"deliverer_phone" binding:"required"`
	DelivererVehicle   string    `json:"deliverer_vehicle" binding:"required"`
	ConsignorLastName  string    `json:"consignor_last_name" binding:"required"`
	ConsignorFirstName string    `json:"consignor_first_name"`
	ConsignorRole      string    `json:"consignor_role" binding:"required"`
	ConsignorContact   string    `json:"consignor_contact" binding:"required"`
	ProductCategory    string    `json:"product_category" binding:"required"`
	NetWeight          float64   `json:"net_weight" binding:"required,gt=0"`
	RegionalRebate     float64   `json:"regional_rebate" binding:"gte=0"`
	CommunalRebate     float64   `json:"communal_rebate" binding:"gte=0"`
	UnitPrice          float64   `json:"unit_price" binding:"required,gt=0"`
	QuantityToDeliver  float64   `json:"quantity_to_deliver" binding:"required,gt=0"`
}

// UpdateDeliverySlipRequest represents the partial delivery slip update payload
type UpdateDeliverySlipRequest struct {
	DeliveryDate       *time.Time `json:"delivery_date"`
	DeparturePlace     *string    `json:"departure_place"`
	Destination        *string    `json:"destination"`
	DelivererLastName  *string    `json:"deliverer_last_name"`
	DelivererFirstName *string    `json:"deliverer_first_name"`
	DelivererPhone     *string    `json:"deliverer_phone"`
	DelivererVehicle   *string    `json:"deliverer_vehicle"`
	ConsignorLastName  *string    `json:"consignor_last_name"`
	ConsignorFirstName *string    `json:"consignor_first_name"`
	ConsignorRole      *string    `json:"consignor_role"`
	ConsignorContact   *string    `json:"consignor_contact"`
	ProductCategory    *string    `json:"product_category"`
	NetWeight          *float64   `json:"net_weight" binding:"omitempty,gt=0"`
	RegionalRebate     *float64   `json:"regional_rebate" binding:"omitempty,gte=0"`
	CommunalRebate     *float64   `json:"communal_rebate" binding:"omitempty,gte=0"`
	UnitPrice          *float64   `json:"unit_price" binding:"omitempty,gt=0"`
	QuantityToDeliver  *float64   `json:"quantity_to_deliver" binding:"omitempty,gt=0"`
}
