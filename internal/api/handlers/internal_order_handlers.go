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

// InternalOrderHandler exposes the internal order HTTP surface
type InternalOrderHandler struct {
	service *application.InternalOrderService
	logger  *logging.Logger
}

// NewInternalOrderHandler creates a new InternalOrderHandler
func NewInternalOrderHandler(service *application.InternalOrderService, logger *logging.Logger) *InternalOrderHandler {
	return &InternalOrderHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the internal order routes
func (h *InternalOrderHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/internalOrders", h.List)
	api.GET("/internalOrdersIssued", h.ListIssued)
	api.GET("/internalOrdersAccepted", h.ListAccepted)
	api.GET("/internalOrders/:id", h.Get)
	api.POST("/internalOrders", h.Create)
	api.PUT("/internalOrders/:id", h.ChangeState)
	api.DELETE("/internalOrders/:id", h.Delete)
}

// Create handles POST /api/internalOrders
func (h *InternalOrderHandler) Create(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var req dto.CreateInternalOrderRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.CreateInternalOrderCommand{
		IssueDate:  req.IssueDate,
		CustomerID: req.CustomerID,
	}
	for _, line := range req.Products {
		cmd.Products = append(cmd.Products, domain.InternalOrderLine{
			SKUID:       line.SKUID,
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

	c.JSON(http.StatusCreated, toInternalOrderResponse(order))
}

// Get handles GET /api/internalOrders/:id
func (h *InternalOrderHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, toInternalOrderResponse(order))
}

// List handles GET /api/internalOrders
func (h *InternalOrderHandler) List(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toInternalOrderResponses(orders))
}

// ListIssued handles GET /api/internalOrdersIssued
func (h *InternalOrderHandler) ListIssued(c *gin.Context) {
	h.listByState(c, domain.InternalStateIssued)
}

// ListAccepted handles GET /api/internalOrdersAccepted
func (h *InternalOrderHandler) ListAccepted(c *gin.Context) {
	h.listByState(c, domain.InternalStateAccepted)
}

func (h *InternalOrderHandler) listByState(c *gin.Context, state domain.InternalOrderState) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	orders, err := h.service.ListByState(c.Request.Context(), state)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toInternalOrderResponses(orders))
}

// ChangeState handles PUT /api/internalOrders/:id
func (h *InternalOrderHandler) ChangeState(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.UpdateInternalOrderRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	cmd := application.ChangeInternalStateCommand{
		OrderID:  id,
		NewState: req.NewState,
	}
	for _, item := range req.Products {
		cmd.Products = append(cmd.Products, domain.CompletedItem{
			SKUID: item.SKUID,
			RFID:  item.RFID,
		})
	}

	order, err := h.service.ChangeState(c.Request.Context(), cmd)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toInternalOrderResponse(order))
}

// Delete handles DELETE /api/internalOrders/:id
func (h *InternalOrderHandler) Delete(c *gin.Context) {
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

func toInternalOrderResponse(order *domain.InternalOrder) dto.InternalOrderResponse {
	resp := dto.InternalOrderResponse{
		ID:         order.ID,
		IssueDate:  order.IssueDate,
		State:      string(order.State),
		CustomerID: order.CustomerID,
		Products:   make([]dto.InternalOrderLineResponse, len(order.Products)),
	}

	for i, line := range order.Products {
		resp.Products[i] = dto.InternalOrderLineResponse{
			SKUID:       line.SKUID,
			Description: line.Description,
			Price:       line.Price,
			Qty:         line.Qty,
		}
	}

	for _, item := range order.CompletedItems {
		resp.CompletedItems = append(resp.CompletedItems, dto.CompletedItemResponse{
			SKUID: item.SKUID,
			RFID:  item.RFID,
		})
	}

	return resp
}

func toInternalOrderResponses(orders []*domain.InternalOrder) []dto.InternalOrderResponse {
	responses := make([]dto.InternalOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toInternalOrderResponse(order)
	}
	return responses
}
