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

// StockHandler exposes the SKU and position HTTP surface
type StockHandler struct {
	service *application.StockService
	logger  *logging.Logger
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(service *application.StockService, logger *logging.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the SKU and position routes
func (h *StockHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/skus", h.ListSKUs)
	api.GET("/skus/:id", h.GetSKU)
	api.POST("/sku", h.CreateSKU)
	api.PUT("/sku/:id", h.ModifySKU)
	api.PUT("/sku/:id/position", h.AssignPosition)
	api.DELETE("/skus/:id", h.DeleteSKU)

	api.GET("/positions", h.ListPositions)
	api.POST("/position", h.CreatePosition)
	api.PUT("/position/:positionID", h.ModifyPosition)
	api.PUT("/position/:positionID/changeID", h.ChangePositionID)
	api.DELETE("/position/:positionID", h.DeletePosition)
}

// CreateSKU handles POST /api/sku
func (h *StockHandler) CreateSKU(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var req dto.CreateSKURequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	sku, err := h.service.CreateSKU(c.Request.Context(), application.CreateSKUCommand{
		Description:       req.Description,
		Weight:            req.Weight,
		Volume:            req.Volume,
		Notes:             req.Notes,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusCreated, toSKUResponse(sku))
}

// GetSKU handles GET /api/skus/:id
func (h *StockHandler) GetSKU(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	sku, err := h.service.GetSKU(c.Request.Context(), id)
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUResponse(sku))
}

// ListSKUs handles GET /api/skus
func (h *StockHandler) ListSKUs(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	skus, err := h.service.ListSKUs(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	responses := make([]dto.SKUResponse, len(skus))
	for i, sku := range skus {
		responses[i] = toSKUResponse(sku)
	}

	c.JSON(http.StatusOK, responses)
}

// ModifySKU handles PUT /api/sku/:id
func (h *StockHandler) ModifySKU(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.UpdateSKURequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	sku, err := h.service.ModifySKU(c.Request.Context(), application.ModifySKUCommand{
		SKUID:             id,
		Description:       req.NewDescription,
		Weight:            req.NewWeight,
		Volume:            req.NewVolume,
		Notes:             req.NewNotes,
		Price:             req.NewPrice,
		AvailableQuantity: req.NewAvailableQuantity,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUResponse(sku))
}

// AssignPosition handles PUT /api/sku/:id/position
func (h *StockHandler) AssignPosition(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.AssignPositionRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	sku, err := h.service.AssignPosition(c.Request.Context(), application.AssignPositionCommand{
		SKUID:      id,
		PositionID: req.Position,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toSKUResponse(sku))
}

// DeleteSKU handles DELETE /api/skus/:id
func (h *StockHandler) DeleteSKU(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	id, appErr := parseIDParam(c, "id")
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	if err := h.service.DeleteSKU(c.Request.Context(), id); err != nil {
		respondError(responder, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePosition handles POST /api/position
func (h *StockHandler) CreatePosition(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var req dto.CreatePositionRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	position, err := h.service.CreatePosition(c.Request.Context(), application.CreatePositionCommand{
		PositionID: req.PositionID,
		AisleID:    req.AisleID,
		Row:        req.Row,
		Col:        req.Col,
		MaxWeight:  req.MaxWeight,
		MaxVolume:  req.MaxVolume,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusCreated, toPositionResponse(position))
}

// ListPositions handles GET /api/positions
func (h *StockHandler) ListPositions(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	positions, err := h.service.ListPositions(c.Request.Context())
	if err != nil {
		respondError(responder, err)
		return
	}

	responses := make([]dto.PositionResponse, len(positions))
	for i, position := range positions {
		responses[i] = toPositionResponse(position)
	}

	c.JSON(http.StatusOK, responses)
}

// ModifyPosition handles PUT /api/position/:positionID
func (h *StockHandler) ModifyPosition(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	positionID, appErr := parsePositionIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.UpdatePositionRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	position, err := h.service.ModifyPosition(c.Request.Context(), application.ModifyPositionCommand{
		PositionID:        positionID,
		NewAisleID:        req.NewAisleID,
		NewRow:            req.NewRow,
		NewCol:            req.NewCol,
		NewMaxWeight:      req.NewMaxWeight,
		NewMaxVolume:      req.NewMaxVolume,
		NewOccupiedWeight: req.NewOccupiedWeight,
		NewOccupiedVolume: req.NewOccupiedVolume,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toPositionResponse(position))
}

// ChangePositionID handles PUT /api/position/:positionID/changeID
func (h *StockHandler) ChangePositionID(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	positionID, appErr := parsePositionIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	var req dto.ChangePositionIDRequest
	if appErr := middleware.BindAndValidate(c, &req); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	position, err := h.service.ChangePositionID(c.Request.Context(), application.ChangePositionIDCommand{
		OldPositionID: positionID,
		NewPositionID: req.NewPositionID,
	})
	if err != nil {
		respondError(responder, err)
		return
	}

	c.JSON(http.StatusOK, toPositionResponse(position))
}

// DeletePosition handles DELETE /api/position/:positionID
func (h *StockHandler) DeletePosition(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	positionID, appErr := parsePositionIDParam(c)
	if appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	if err := h.service.DeletePosition(c.Request.Context(), positionID); err != nil {
		respondError(responder, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePositionIDParam parses a 12-digit position id path parameter
func parsePositionIDParam(c *gin.Context) (string, *apperrors.AppError) {
	raw := c.Param("positionID")
	if !domain.ValidPositionID(raw) {
		return "", apperrors.ErrValidation("invalid positionID").WithDetail("positionID", raw)
	}
	return raw, nil
}

func toSKUResponse(sku *domain.SKU) dto.SKUResponse {
	resp := dto.SKUResponse{
		ID:                sku.ID,
		Description:       sku.Description,
		Weight:            sku.Weight,
		Volume:            sku.Volume,
		Notes:             sku.Notes,
		Position:          sku.Position,
		AvailableQuantity: sku.AvailableQuantity,
		Price:             sku.Price,
		TestDescriptors:   sku.TestDescriptors,
	}
	if resp.TestDescriptors == nil {
		resp.TestDescriptors = []int{}
	}
	return resp
}

func toPositionResponse(position *domain.Position) dto.PositionResponse {
	return dto.PositionResponse{
		PositionID:     position.ID,
		AisleID:        position.AisleID,
		Row:            position.Row,
		Col:            position.Col,
		MaxWeight:      position.MaxWeight,
		MaxVolume:      position.MaxVolume,
		OccupiedWeight: position.OccupiedWeight,
		OccupiedVolume: position.OccupiedVolume,
	}
}
