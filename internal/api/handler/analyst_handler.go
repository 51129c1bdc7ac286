package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corebank/banking-system/internal/api/metrics"
	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// AnalystHandler handles the analyst review routes.
type AnalystHandler struct {
	creditService ports.CreditRequestService
}

func NewAnalystHandler(creditService ports.CreditRequestService) *AnalystHandler {
	return &AnalystHandler{creditService: creditService}
}

// ListCreditRequests returns every credit request in the system.
//
// @Summary      List all credit requests
// @Tags         analyst
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CreditRequest
// @Router       /analyst/credit-requests [get]
func (h *AnalystHandler) ListCreditRequests(c echo.Context) error {
	reqs, err := h.creditService.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	if reqs == nil {
		reqs = []*domain.CreditRequest{}
	}
	return c.JSON(http.StatusOK, reqs)
}

// GetCreditRequest returns a single credit request by id.
//
// @Summary      Get a credit request
// @Tags         analyst
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Credit request id"
// @Success      200  {object}  domain.CreditRequest
// @Failure      404  {object}  messageResponse
// @Router       /analyst/credit-requests/{id} [get]
func (h *AnalystHandler) GetCreditRequest(c echo.Context) error {
	req, err := h.creditService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCreditRequestNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Credit request not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	return c.JSON(http.StatusOK, req)
}

// Review applies an analyst decision to a credit request.
//
// @Summary      Review a credit request
// @Tags         analyst
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Credit request id"
// @Param        body  body      reviewRequest  true  "Review decision"
// @Success      200   {object}  domain.CreditRequest
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /analyst/credit-requests/{id} [put]
func (h *AnalystHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	updated, err := h.creditService.Review(c.Request().Context(), c.Param("id"), ports.ReviewInput{
		Status:  req.Status,
		Remarks: req.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCreditRequestNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Credit request not found"})
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	metrics.CreditReviewsTotal.WithLabelValues(string(updated.Status)).Inc()
	return c.JSON(http.StatusOK, updated)
}
