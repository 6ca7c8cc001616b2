package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docledger/internal/application/services"
)

// DirectoryHandler serves the reference-data style lookups: categories and
// per-user company lists.
type DirectoryHandler struct {
	categories *services.CategoryService
	companies  *services.CompanyService
}

func NewDirectoryHandler(categories *services.CategoryService, companies *services.CompanyService) *DirectoryHandler {
	return &DirectoryHandler{categories: categories, companies: companies}
}

// ListCategories --> GET /api/categories
func (h *DirectoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ListCompanies --> GET /api/companies/:id
func (h *DirectoryHandler) ListCompanies(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	companies, err := h.companies.DistinctCompanies(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, companies)
}
