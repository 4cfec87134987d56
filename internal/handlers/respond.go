package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Engine callers distinguish failure kinds by code, never by HTTP status
// alone, so every error response carries success=false plus a stable code.

func respondSuccess(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"success": true, "data": payload})
}

func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, code := classifyError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("code", code), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"success": false, "code": code, "error": "internal error"})
		return
	}
	logger.Warn("Request rejected", slog.String("code", code), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"success": false, "code": code, "error": err.Error()})
}

func classifyError(err error) (int, string) {
	var unbalanced *services.UnbalancedDocumentError
	switch {
	case errors.As(err, &unbalanced):
		return http.StatusUnprocessableEntity, "UNBALANCED_DOCUMENT"
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, services.ErrInstrumentNotRemovable):
		return http.StatusConflict, "INSTRUMENT_NOT_REMOVABLE"
	case errors.Is(err, services.ErrDuplicateSection):
		return http.StatusConflict, "DUPLICATE_SECTION"
	case errors.Is(err, services.ErrNoValidItems):
		return http.StatusBadRequest, "NO_VALID_ITEMS"
	case errors.Is(err, services.ErrAccountResolution):
		return http.StatusBadRequest, "ACCOUNT_RESOLUTION"
	case errors.Is(err, domain.ErrChartMisconfigured):
		return http.StatusInternalServerError, "CHART_MISCONFIGURED"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "DUPLICATE"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "VALIDATION", "error": "Invalid request format: " + err.Error()})
}

// requestScope extracts the tenant and user of the authenticated request,
// aborting with 401 when either is missing.
func requestScope(c *gin.Context) (tenantID, userID string, ok bool) {
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "code": "UNAUTHORIZED", "error": "tenant not resolved"})
		return "", "", false
	}
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "code": "UNAUTHORIZED", "error": "user not resolved"})
		return "", "", false
	}
	return tenantID, userID, true
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && v > 0 && v <= 500 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
