package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corebank/banking-system/internal/api/metrics"
	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// RMHandler handles the relationship-manager routes: clients and credit
// request submission. Every operation is scoped to the RM id carried by the
// credential token.
type RMHandler struct {
	clientService ports.ClientService
	creditService ports.CreditRequestService
}

func NewRMHandler(clientService ports.ClientService, creditService ports.CreditRequestService) *RMHandler {
	return &RMHandler{clientService: clientService, creditService: creditService}
}

// CreateClient onboards a new corporate client owned by the calling RM.
//
// @Summary      Create a client
// @Tags         rm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  messageResponse
// @Router       /rm/clients [post]
func (h *RMHandler) CreateClient(c echo.Context) error {
	_, rmID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clientService.Create(c.Request().Context(), toClientInput(req), rmID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	metrics.ClientsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, client)
}

// ListClients returns the calling RM's clients.
//
// @Summary      List own clients
// @Tags         rm
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /rm/clients [get]
func (h *RMHandler) ListClients(c echo.Context) error {
	_, rmID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	clients, err := h.clientService.ListByRM(c.Request().Context(), rmID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	if clients == nil {
		clients = []*domain.Client{}
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClient returns a single client by id.
//
// @Summary      Get a client
// @Tags         rm
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  messageResponse
// @Router       /rm/clients/{id} [get]
func (h *RMHandler) GetClient(c echo.Context) error {
	client, err := h.clientService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	return c.JSON(http.StatusOK, client)
}

// UpdateClient edits a client owned by the calling RM.
//
// @Summary      Update a client
// @Tags         rm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /rm/clients/{id} [put]
func (h *RMHandler) UpdateClient(c echo.Context) error {
	_, rmID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	client, err := h.clientService.Update(c.Request().Context(), c.Param("id"), toClientInput(req), rmID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	return c.JSON(http.StatusOK, client)
}

// CreateCreditRequest submits a new credit request against one of the
// calling RM's clients.
//
// @Summary      Submit a credit request
// @Tags         rm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      creditRequestRequest  true  "Credit request details"
// @Success      200   {object}  domain.CreditRequest
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /rm/credit-requests [post]
func (h *RMHandler) CreateCreditRequest(c echo.Context) error {
	_, rmID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req creditRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	created, err := h.creditService.Create(c.Request().Context(), ports.CreditRequestInput{
		ClientID:      req.ClientID,
		RequestAmount: req.RequestAmount,
		TenureMonths:  req.TenureMonths,
		Purpose:       req.Purpose,
	}, rmID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}

	metrics.CreditRequestsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, created)
}

// ListCreditRequests returns the calling RM's submitted requests.
//
// @Summary      List own credit requests
// @Tags         rm
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CreditRequest
// @Router       /rm/credit-requests [get]
func (h *RMHandler) ListCreditRequests(c echo.Context) error {
	_, rmID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	reqs, err := h.creditService.ListBySubmitter(c.Request().Context(), rmID)
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
// @Tags         rm
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Credit request id"
// @Success      200  {object}  domain.CreditRequest
// @Failure      404  {object}  messageResponse
// @Router       /rm/credit-requests/{id} [get]
func (h *RMHandler) GetCreditRequest(c echo.Context) error {
	req, err := h.creditService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCreditRequestNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Credit request not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	return c.JSON(http.StatusOK, req)
}

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Address:     req.Address,
		PrimaryContact: ports.ContactInput{
			Name:  req.PrimaryContact.Name,
			Email: req.PrimaryContact.Email,
			Phone: req.PrimaryContact.Phone,
		},
		AnnualTurnover:     req.AnnualTurnover,
		DocumentsSubmitted: req.DocumentsSubmitted,
	}
}
