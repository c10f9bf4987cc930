package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/request"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/response"
)

// AdjustmentHandler handles adjustment-related HTTP requests
type AdjustmentHandler struct {
	adjustmentService *service.AdjustmentService
}

// NewAdjustmentHandler creates a new adjustment handler
func NewAdjustmentHandler(adjustmentService *service.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentService: adjustmentService}
}

// List handles listing adjustments
func (h *AdjustmentHandler) List(c *gin.Context) {
	adjustments, err := h.adjustmentService.ListAdjustments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Adjustments retrieved successfully", adjustments)
}

// Create handles creating an adjustment
func (h *AdjustmentHandler) Create(c *gin.Context) {
	var req request.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receiptID, err := uuid.Parse(req.ReceiptID)
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	adjustment, status, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), &service.CreateAdjustmentInput{
		ReceiptID:      receiptID,
		PaymentDate:    req.PaymentDate,
		InvoiceNo:      req.InvoiceNo,
		Designation:    req.Designation,
		DepositAccount: req.DepositAccount,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		AmountPaid:     req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Adjustment created successfully", response.NewAdjustmentResponse(adjustment, status, true))
}

// Get handles getting a single adjustment
func (h *AdjustmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	adjustment, err := h.adjustmentService.GetAdjustment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Adjustment retrieved successfully", response.NewAdjustmentResponse(adjustment, 0, false))
}

// GetByReceipt handles getting the adjustment attached to a receipt
func (h *AdjustmentHandler) GetByReceipt(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	adjustment, err := h.adjustmentService.GetAdjustmentByReceipt(c.Request.Context(), receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Adjustment retrieved successfully", response.NewAdjustmentResponse(adjustment, 0, false))
}

// Update handles partially updating an adjustment
func (h *AdjustmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	var req request.UpdateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	adjustment, status, err := h.adjustmentService.UpdateAdjustment(c.Request.Context(), id, &service.UpdateAdjustmentInput{
		PaymentDate:    req.PaymentDate,
		InvoiceNo:      req.InvoiceNo,
		Designation:    req.Designation,
		DepositAccount: req.DepositAccount,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		AmountPaid:     req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Adjustment updated successfully", response.NewAdjustmentResponse(adjustment, status, true))
}
