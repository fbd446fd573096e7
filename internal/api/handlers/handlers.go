package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/middleware"
)

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int, *apperrors.AppError) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrValidation("invalid " + name).WithDetail(name, raw)
	}
	return id, nil
}

// respondError routes an error through the responder, keeping unknown
// errors as 500s
func respondError(r *middleware.ErrorResponder, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		r.RespondWithAppError(appErr)
		return
	}
	r.RespondInternalError(err)
}
