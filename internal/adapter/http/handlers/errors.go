package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vehicle_quotation/internal/domain"
	"vehicle_quotation/pkg"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errMissingEmail            = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter email is required", http.StatusBadRequest)
)

// mapDomainError turns use case failures into the HTTP error envelope. Domain failures
// keep their message; anything else is reported as internal without its cause.
func mapDomainError(err error) *pkg.AppError {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		conflict   *domain.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", validation.Error(), err, http.StatusBadRequest)
	case errors.As(err, &conflict):
		return pkg.NewDomainError("CONFLICT", conflict.Error(), err, http.StatusConflict)
	case domain.IsNotFound(err):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case domain.IsValidation(err):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case domain.IsConflict(err):
		return pkg.NewDomainError("CONFLICT", "Conflicting update", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("route", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
