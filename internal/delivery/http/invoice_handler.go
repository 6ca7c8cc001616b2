package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docledger/internal/application/command"
	"docledger/internal/application/services"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// ListByCompany lists the company partition --> GET /invoices?company=X
func (h *InvoiceHandler) ListByCompany(c echo.Context) error {
	company := c.QueryParam("company")
	if company == "" {
		return badRequest(c, "company query parameter is required")
	}

	invoices, err := h.invoices.ListByCompany(c.Request().Context(), company)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create files a new invoice for the session user --> POST /invoices
func (h *InvoiceHandler) Create(c echo.Context) error {
	cmd := new(command.CreateInvoiceCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	invoice, err := h.invoices.Create(c.Request().Context(), currentUserID(c), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, invoice)
}

// Get returns one invoice --> GET /api/invoices/:id
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	invoice, err := h.invoices.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoice)
}

// Update patches owner-held fields --> PATCH /api/invoices/:id
func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	cmd := new(command.UpdateInvoiceCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	invoice, err := h.invoices.Update(c.Request().Context(), currentUserID(c), id, cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoice)
}

// Delete removes an owned invoice --> DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.invoices.Delete(c.Request().Context(), currentUserID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "invoice deleted"})
}

// ListByUser lists a user's invoices --> GET /api/invoices/:id/future
func (h *InvoiceHandler) ListByUser(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	invoices, err := h.invoices.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoices)
}
