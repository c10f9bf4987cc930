package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/request"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/response"
)

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// List handles listing billings
func (h *BillingHandler) List(c *gin.Context) {
	// An optional receipt_status filter restricts the list to billings whose
	// receipt is paid or partially paid.
	if statusParam := c.Query("receipt_status"); statusParam != "" {
		status, ok := enum.ParseReceiptStatus(statusParam)
		if !ok {
			response.BadRequest(c, "Invalid receipt_status filter")
			return
		}
		billings, err := h.billingService.ListPaidBillings(c.Request.Context(), status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Billings retrieved successfully", billings)
		return
	}

	billings, err := h.billingService.ListBillings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billings retrieved successfully", billings)
}

// Create handles creating a billing
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receiptID, err := uuid.Parse(req.ReceiptID)
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	billing, status, err := h.billingService.CreateBilling(c.Request.Context(), &service.CreateBillingInput{
		ReceiptID:      receiptID,
		PaymentDate:    req.PaymentDate,
		InvoiceNo:      req.InvoiceNo,
		Designation:    req.Designation,
		DepositAccount: req.DepositAccount,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		AdvancePayment: req.AdvancePayment,
		AmountPaid:     req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Billing created successfully", response.NewBillingResponse(billing, status, true))
}

// Get handles getting a single billing
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	billing, err := h.billingService.GetBilling(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing retrieved successfully", response.NewBillingResponse(billing, 0, false))
}

// GetByReceipt handles getting the billing attached to a receipt
func (h *BillingHandler) GetByReceipt(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	billing, err := h.billingService.GetBillingByReceipt(c.Request.Context(), receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing retrieved successfully", response.NewBillingResponse(billing, 0, false))
}

// Update handles partially updating a billing
func (h *BillingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	var req request.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	billing, status, err := h.billingService.UpdateBilling(c.Request.Context(), id, &service.UpdateBillingInput{
		PaymentDate:    req.PaymentDate,
		InvoiceNo:      req.InvoiceNo,
		Designation:    req.Designation,
		DepositAccount: req.DepositAccount,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		AdvancePayment: req.AdvancePayment,
		AmountPaid:     req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing updated successfully", response.NewBillingResponse(billing, status, true))
}

// Delete handles deleting a billing and resetting its receipt to Unpaid
func (h *BillingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	if err := h.billingService.DeleteBilling(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
