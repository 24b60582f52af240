package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "vehicle_quotation/internal/adapter/http/dto/request"
	response "vehicle_quotation/internal/adapter/http/dto/response"
	"vehicle_quotation/internal/infrastructure/logging"
	"vehicle_quotation/internal/usecase"
)

// QuotationHandler serves the quotation lifecycle and the rendered document.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	log     *zap.Logger
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, log *zap.Logger) *QuotationHandler {
	return &QuotationHandler{usecase: uc, log: logging.OrNop(log).With(zap.String("component", "quotation.handler"))}
}

// ListQuotations godoc
//
// @Summary List quotations
// @Description Every quotation, priced at request time
// @Tags quotations
// @Produce json
// @Success 200 {array} response.QuotationResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuotations(quotations))
}

// SearchQuotations godoc
//
// @Summary Search quotations by customer email
// @Tags quotations
// @Produce json
// @Param email query string true "Customer email (mail is accepted too)"
// @Success 200 {array} response.QuotationResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quotations/search [get]
func (h *QuotationHandler) SearchQuotations(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		email = strings.TrimSpace(c.Query("mail"))
	}
	if email == "" {
		c.JSON(errMissingEmail.HTTPStatus, errMissingEmail.ToHTTPError())
		return
	}

	quotations, err := h.usecase.ListByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuotations(quotations))
}

// GetQuotation godoc
//
// @Summary Get a quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuotation(quotation))
}

// GetQuotationDocument godoc
//
// @Summary Download the quotation as PDF
// @Tags quotations
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Success 200 {file} file
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id}/pdf [get]
func (h *QuotationHandler) GetQuotationDocument(c *gin.Context) {
	doc, err := h.usecase.RenderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename="+strconv.Quote(doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

// CreateQuotation godoc
//
// @Summary Create a quotation
// @Description Resolves the referenced catalog entries and customer, prices the quotation and stores it
// @Tags quotations
// @Accept json
// @Produce json
// @Param body body request.QuotationRequest true "Quotation"
// @Success 201 {object} response.QuotationResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPricedQuotation(quotation))
}

// UpdateQuotation godoc
//
// @Summary Update a quotation
// @Description Partial update: omitted fields keep their stored value, option_ids replaces the whole set
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param body body request.QuotationRequest true "Fields to change"
// @Success 200 {object} response.QuotationResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuotation(quotation))
}
