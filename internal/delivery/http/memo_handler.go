package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"docledger/internal/application/command"
	"docledger/internal/application/services"
)

type MemoHandler struct {
	memos *services.MemoService
}

func NewMemoHandler(memos *services.MemoService) *MemoHandler {
	return &MemoHandler{memos: memos}
}

// ListByCompany lists the company partition --> GET /memos?company=X
func (h *MemoHandler) ListByCompany(c echo.Context) error {
	company := c.QueryParam("company")
	if company == "" {
		return badRequest(c, "company query parameter is required")
	}

	memos, err := h.memos.ListByCompany(c.Request().Context(), company)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, memos)
}

// Create files a new memo for the session user --> POST /memos
func (h *MemoHandler) Create(c echo.Context) error {
	cmd := new(command.CreateMemoCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	memo, err := h.memos.Create(c.Request().Context(), currentUserID(c), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, memo)
}

// Get returns one memo --> GET /api/memos/:id
func (h *MemoHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	memo, err := h.memos.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, memo)
}

// Update patches owner-held fields --> PATCH /api/memos/:id
func (h *MemoHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	cmd := new(command.UpdateMemoCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	memo, err := h.memos.Update(c.Request().Context(), currentUserID(c), id, cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, memo)
}

// Delete removes an owned memo --> DELETE /api/memos/:id
func (h *MemoHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.memos.Delete(c.Request().Context(), currentUserID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "memo deleted"})
}

// ListByUser lists a user's memos --> GET /api/memos/:id/future
func (h *MemoHandler) ListByUser(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	memos, err := h.memos.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, memos)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
