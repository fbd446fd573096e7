package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/services/restock-service/internal/api/dto"
	"github.com/wms-platform/services/restock-service/internal/application"
	"github.com/wms-platform/services/restock-service/internal/domain"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/middleware"
)

// RestockOrderHandler exposes the restock order HTTP surface
type RestockOrderHandler struct {
	service *application.RestockOrderService
	logger  *logging.Logger
}

// NewRestockOrderHandler creates a new RestockOrderHandler
func NewRestockOrderHandler(service *application.RestockOrderService, logger *logging.Logger) *RestockOrderHandler {
	return &RestockOrderHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the restock order routes
func (h *RestockOrderHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/restockOrders", h.List)
	api.GET("/restockOrdersIssued", h.ListIssued)
	api.GET("/restockOrders/:id", h.Get)
	api.GET("/restockOrders/:id/returnItems", h.ListReturnItems)
	api.POST("/restockOrder", h.Create)
	api.PUT("/restockOrder/:id", h.ChangeState)
	api.PUT("/restockOrder/:id/skuItems", h.AttachSKUItems)
	api.PUT("/restockOrder/:id/transportNote", h.AttachTransportNote)
	api.DELETE("/restockOrder/:id", h.Delete)
}

// Create handles POST /api/restockOrder
func (h *RestockOrderHandler) Create(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var req dto.CreateRestockOrderRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.CreateRestockOrderCommand{
		IssueDate:  req.IssueDate,
		SupplierID: req.SupplierID,
	}
	for _, line := range req.Products {
		cmd.Products = append(cmd.Products, domain.ProductLine{
			SKUID:       line.SKUID,
			ItemID:      line.ItemID,
			Description: line.Description,
			Price:       line.Price,
			Qty:         line.Qty,
		})
	}

	order, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusCreated, toRestockOrderResponse(order))
}

// Get handles GET /api/restockOrders/:id
func (h *RestockOrderHandler) Get(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponse(order))
}

// List handles GET /api/restockOrders
func (h *RestockOrderHandler) List(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponses(orders))
}

// ListIssued handles GET /api/restockOrdersIssued
func (h *RestockOrderHandler) ListIssued(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	orders, err := h.service.ListIssued(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponses(orders))
}

// ChangeState handles PUT /api/restockOrder/:id
func (h *RestockOrderHandler) ChangeState(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.UpdateRestockStateRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.ChangeRestockStateCommand{
		OrderID:  id,
		NewState: req.NewState,
	}
	for _, item := range req.Products {
		cmd.SKUItems = append(cmd.SKUItems, domain.SKUItemRef{
			SKUID: item.SKUID,
			RFID:  item.RFID,
		})
	}

	order, err := h.service.ChangeState(c.Request.Context(), cmd)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponse(order))
}

// AttachSKUItems handles PUT /api/restockOrder/:id/skuItems
func (h *RestockOrderHandler) AttachSKUItems(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.AttachSKUItemsRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.AttachSKUItemsCommand{OrderID: id}
	for _, item := range req.SKUItems {
		cmd.SKUItems = append(cmd.SKUItems, domain.SKUItemRef{
			SKUID:  item.SKUID,
			ItemID: item.ItemID,
			RFID:   item.RFID,
		})
	}

	order, err := h.service.AttachSKUItems(c.Request.Context(), cmd)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponse(order))
}

// AttachTransportNote handles PUT /api/restockOrder/:id/transportNote
func (h *RestockOrderHandler) AttachTransportNote(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.AddTransportNoteRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.AttachTransportNoteCommand{
		OrderID:       id,
		TransportNote: domain.TransportNote{DeliveryDate: req.TransportNote.DeliveryDate},
	}

	order, err := h.service.AttachTransportNote(c.Request.Context(), cmd)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toRestockOrderResponse(order))
}

// Delete handles DELETE /api/restockOrder/:id
func (h *RestockOrderHandler) Delete(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(responder, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListReturnItems handles GET /api/restockOrders/:id/returnItems
func (h *RestockOrderHandler) ListReturnItems(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	items, err := h.service.ListReturnItems(c.Request.Context(), id)
	if err != nil {
		respondError(responder, err)
		return
	}

	response := make([]dto.ReturnItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.ReturnItemResponse{
			SKUID: item.SKUID,
			RFID:  item.RFID,
		})
	}

	c.JSON(http.StatusOK, response)
}

func toRestockOrderResponse(order *domain.RestockOrder) dto.RestockOrderResponse {
	resp := dto.RestockOrderResponse{
		ID:         order.ID,
		IssueDate:  order.IssueDate,
		State:      string(order.State),
		SupplierID: order.SupplierID,
		Products:   make([]dto.ProductLineResponse, len(order.Products)),
		SKUItems:   make([]dto.SKUItemRefResponse, len(order.SKUItems)),
	}

	for i, line := range order.Products {
		resp.Products[i] = dto.ProductLineResponse{
			SKUID:       line.SKUID,
			ItemID:      line.ItemID,
			Description: line.Description,
			Price:       line.Price,
			Qty:         line.Qty,
		}
	}

	for i, item := range order.SKUItems {
		resp.SKUItems[i] = dto.SKUItemRefResponse{
			SKUID:  item.SKUID,
			ItemID: item.ItemID,
			RFID:   item.RFID,
		}
	}

	if order.TransportNote != nil {
		resp.TransportNote = &dto.TransportNoteResponse{
			DeliveryDate: order.TransportNote.DeliveryDate,
		}
	}

	return resp
}

func toRestockOrderResponses(orders []*domain.RestockOrder) []dto.RestockOrderResponse {
	responses := make([]dto.RestockOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toRestockOrderResponse(order)
	}
	return responses
}
