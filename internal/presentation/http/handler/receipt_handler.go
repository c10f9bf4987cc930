package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/domain/repository"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/request"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/response"
	"github.com/mamisoa/girofle-api/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService  *service.ReceiptService
	deliveryService *service.DeliveryService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, deliveryService *service.DeliveryService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService:  receiptService,
		deliveryService: deliveryService,
	}
}

// List handles listing receipts with filtering and pagination
func (h *ReceiptHandler) List(c *gin.Context) {
	var filter request.ReceiptFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ReceiptFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	params.Pagination.Validate()

	if filter.Status != "" {
		status, ok := enum.ParseReceiptStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	if filter.Type != "" {
		productType := enum.ProductType(filter.Type)
		if !productType.Valid() {
			response.BadRequest(c, "Invalid type filter")
			return
		}
		params.Type = &productType
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		Type:              enum.ProductType(req.Type),
		ReceivedAt:        req.ReceivedAt,
		Designation:       req.Designation,
		Origin:            req.Origin,
		SupplierLastName:  req.SupplierLastName,
		SupplierFirstName: req.SupplierFirstName,
		SupplierTaxID:     req.SupplierTaxID,
		SupplierLocation:  req.SupplierLocation,
		SupplierContact:   req.SupplierContact,
		GrossWeight:       req.GrossWeight,
		NetWeight:         req.NetWeight,
		Unit:              req.Unit,
		PackagingWeight:   req.PackagingWeight,
		DesiccationRate:   req.DesiccationRate,
		HumidityRateFG:    req.HumidityRateFG,
		ApprovedWeight:    req.ApprovedWeight,
		Density:           req.Density,
		HumidityRateCG:    req.HumidityRateCG,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt with its settlement records
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Update handles partially updating a receipt
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateReceiptInput{
		ReceivedAt:        req.ReceivedAt,
		Designation:       req.Designation,
		Origin:            req.Origin,
		SupplierLastName:  req.SupplierLastName,
		SupplierFirstName: req.SupplierFirstName,
		SupplierTaxID:     req.SupplierTaxID,
		SupplierLocation:  req.SupplierLocation,
		SupplierContact:   req.SupplierContact,
		GrossWeight:       req.GrossWeight,
		NetWeight:         req.NetWeight,
		Unit:              req.Unit,
		PackagingWeight:   req.PackagingWeight,
		DesiccationRate:   req.DesiccationRate,
		HumidityRateFG:    req.HumidityRateFG,
		ApprovedWeight:    req.ApprovedWeight,
		Density:           req.Density,
		HumidityRateCG:    req.HumidityRateCG,
	}
	if req.Type != nil {
		productType := enum.ProductType(*req.Type)
		input.Type = &productType
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetTransitions handles reporting the available lifecycle transitions
func (h *ReceiptHandler) GetTransitions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	result, err := h.receiptService.GetTransitions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transitions retrieved successfully", result)
}

// Deliver handles confirming the delivery of a single receipt
func (h *ReceiptHandler) Deliver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.deliveryService.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt marked as delivered", receipt)
}

// DeliverBatch handles confirming the delivery of several receipts at once
func (h *ReceiptHandler) DeliverBatch(c *gin.Context) {
	var req request.DeliverBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ReceiptIDs))
	for _, raw := range req.ReceiptIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid receipt ID: "+raw)
			return
		}
		ids = append(ids, id)
	}

	result, err := h.deliveryService.MarkDeliveredBatch(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts marked as delivered", result)
}
