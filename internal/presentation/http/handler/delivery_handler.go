package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/request"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/response"
)

// DeliverySlipHandler handles delivery-slip HTTP requests
type DeliverySlipHandler struct {
	deliveryService *service.DeliveryService
}

// NewDeliverySlipHandler creates a new delivery slip handler
func NewDeliverySlipHandler(deliveryService *service.DeliveryService) *DeliverySlipHandler {
	return &DeliverySlipHandler{deliveryService: deliveryService}
}

// List handles listing delivery slips
func (h *DeliverySlipHandler) List(c *gin.Context) {
	slips, err := h.deliveryService.ListDeliverySlips(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery slips retrieved successfully", slips)
}

// Create handles creating a delivery slip
func (h *DeliverySlipHandler) Create(c *gin.Context) {
	var req request.CreateDeliverySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receiptID, err := uuid.Parse(req.ReceiptID)
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	slip, status, err := h.deliveryService.CreateDeliverySlip(c.Request.Context(), &service.CreateDeliverySlipInput{
		ReceiptID:          receiptID,
		DeliveryDate:       req.DeliveryDate,
		DeparturePlace:     req.DeparturePlace,
		Destination:        req.Destination,
		DelivererLastName:  req.DelivererLastName,
		DelivererFirstName: req.DelivererFirstName,
		DelivererPhone:     req.DelivererPhone,
		DelivererVehicle:   req.DelivererVehicle,
		ConsignorLastName:  req.ConsignorLastName,
		ConsignorFirstName: req.ConsignorFirstName,
		ConsignorRole:      req.ConsignorRole,
		ConsignorContact:   req.ConsignorContact,
		ProductCategory:    req.ProductCategory,
		NetWeight:          req.NetWeight,
		RegionalRebate:     req.RegionalRebate,
		CommunalRebate:     req.CommunalRebate,
		UnitPrice:          req.UnitPrice,
		QuantityToDeliver:  req.QuantityToDeliver,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Delivery slip created successfully", gin.H{
		"delivery_slip":  slip,
		"receipt_status": status.String(),
	})
}

// Get handles getting a single delivery slip
func (h *DeliverySlipHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid delivery slip ID")
		return
	}

	slip, err := h.deliveryService.GetDeliverySlip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery slip retrieved successfully", slip)
}

// GetByReceipt handles getting the delivery slip attached to a receipt
func (h *DeliverySlipHandler) GetByReceipt(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	slip, err := h.deliveryService.GetDeliverySlipByReceipt(c.Request.Context(), receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery slip retrieved successfully", slip)
}

// Update handles partially updating a delivery slip
func (h *DeliverySlipHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid delivery slip ID")
		return
	}

	var req request.UpdateDeliverySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	slip, err := h.deliveryService.UpdateDeliverySlip(c.Request.Context(), id, &service.UpdateDeliverySlipInput{
		DeliveryDate:       req.DeliveryDate,
		DeparturePlace:     req.DeparturePlace,
		Destination:        req.Destination,
		DelivererLastName:  req.DelivererLastName,
		DelivererFirstName: req.DelivererFirstName,
		DelivererPhone:     req.DelivererPhone,
		DelivererVehicle:   req.DelivererVehicle,
		ConsignorLastName:  req.ConsignorLastName,
		ConsignorFirstName: req.ConsignorFirstName,
		ConsignorRole:      req.ConsignorRole,
		ConsignorContact:   req.ConsignorContact,
		ProductCategory:    req.ProductCategory,
		NetWeight:          req.NetWeight,
		RegionalRebate:     req.RegionalRebate,
		CommunalRebate:     req.CommunalRebate,
		UnitPrice:          req.UnitPrice,
		QuantityToDeliver:  req.QuantityToDeliver,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery slip updated successfully", slip)
}

// Delete handles deleting a delivery slip and resetting its receipt to Paid
func (h *DeliverySlipHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid delivery slip ID")
		return
	}

	if err := h.deliveryService.DeleteDeliverySlip(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
