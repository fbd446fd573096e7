package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/services/restock-service/internal/api/dto"
	"github.com/wms-platform/services/restock-service/internal/application"
	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/middleware"
)

// SKUItemHandler exposes the physical item instance HTTP surface
type SKUItemHandler struct {
	service *application.SKUItemService
	logger  *logging.Logger
}

// NewSKUItemHandler creates a new SKUItemHandler
func NewSKUItemHandler(service *application.SKUItemService, logger *logging.Logger) *SKUItemHandler {
	return &SKUItemHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the sku item routes
func (h *SKUItemHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/skuitems", h.List)
	api.GET("/skuitems/:rfid", h.Get)
	api.GET("/skuitems/sku/:id", h.ListAvailableBySKU)
	api.POST("/skuitem", h.Create)
	api.PUT("/skuitems/:rfid", h.Modify)
	api.DELETE("/skuitems/:rfid", h.Delete)
}

// Create handles POST /api/skuitem
func (h *SKUItemHandler) Create(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var req dto.CreateSKUItemRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	item, err := h.service.Create(c.Request.Context(), application.CreateSKUItemCommand{
		RFID:        req.RFID,
		SKUID:       req.SKUID,
		DateOfStock: req.DateOfStock,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusCreated, toSKUItemResponse(item))
}

// Get handles GET /api/skuitems/:rfid
func (h *SKUItemHandler) Get(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	rfid, appErr := parseRFIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	item, err := h.service.Get(c.Request.Context(), rfid)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUItemResponse(item))
}

// List handles GET /api/skuitems
func (h *SKUItemHandler) List(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUItemResponses(items))
}

// ListAvailableBySKU handles GET /api/skuitems/sku/:id
func (h *SKUItemHandler) ListAvailableBySKU(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	items, err := h.service.ListAvailableBySKU(c.Request.Context(), id)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUItemResponses(items))
}

// Modify handles PUT /api/skuitems/:rfid
func (h *SKUItemHandler) Modify(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	rfid, appErr := parseRFIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.UpdateSKUItemRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	item, err := h.service.Modify(c.Request.Context(), application.ModifySKUItemCommand{
		RFID:           rfid,
		NewRFID:        req.NewRFID,
		NewAvailable:   *req.NewAvailable,
		NewDateOfStock: req.NewDateOfStock,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUItemResponse(item))
}

// Delete handles DELETE /api/skuitems/:rfid
func (h *SKUItemHandler) Delete(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	rfid, appErr := parseRFIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	if err := h.service.Delete(c.Request.Context(), rfid); err != nil {
		respondError(responder, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseRFIDParam parses a 32-digit RFID path parameter
func parseRFIDParam(c *gin.Context) (string, *apperrors.AppError) {
	raw := c.Param("rfid")
	if !domain.ValidRFID(raw) {
		return "", apperrors.ErrValidation("invalid rfid").WithDetail("rfid", raw)
	}
	return raw, nil
}

func toSKUItemResponse(item *domain.SKUItem) dto.SKUItemResponse {
	return dto.SKUItemResponse{
		RFID:        item.RFID,
		SKUID:       item.SKUID,
		Available:   item.Available,
		DateOfStock: item.DateOfStock,
	}
}

func toSKUItemResponses(items []*domain.SKUItem) []dto.SKUItemResponse {
	responses := make([]dto.SKUItemResponse, len(items))
	for i, item := range items {
		responses[i] = toSKUItemResponse(item)
	}
	return responses
}
