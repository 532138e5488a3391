package handlers

import (
	"net/http"

	"smartfarm_app_go/models"

	"github.com/labstack/echo/v4"
)

// CatalogHandler exposes the read-only scoring catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type catalogCategoryResponse struct {
	Name     string               `json:"name"`
	TotalMax int                  `json:"total_max"`
	Items    []models.CatalogItem `json:"items"`
}

// List returns every category with its items and maximum.
func (h *CatalogHandler) List(c echo.Context) error {
	categories := make([]catalogCategoryResponse, 0, len(models.ScoringCatalog))
	for i := range models.ScoringCatalog {
		category := &models.ScoringCatalog[i]
		categories = append(categories, catalogCategoryResponse{
			Name:     category.Name,
			TotalMax: category.TotalMax(),
			Items:    category.Items,
		})
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns one category by name.
func (h *CatalogHandler) Get(c echo.Context) error {
	category, ok := models.CategoryByName(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Unknown evaluation category: " + c.Param("name"),
		})
	}
	return c.JSON(http.StatusOK, catalogCategoryResponse{
		Name:     category.Name,
		TotalMax: category.TotalMax(),
		Items:    category.Items,
	})
}

type optionsResponse struct {
	Categories []string `json:"categories"`
	Branches   []string `json:"branches"`
	Profiles   []string `json:"profiles"`
	Protocols  []string `json:"protocols"`
}

// Options returns the fixed selector values used by every form.
func (h *CatalogHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, optionsResponse{
		Categories: models.CategoryNames(),
		Branches:   models.BranchOptions,
		Profiles:   models.ProfileOptions,
		Protocols:  models.ProjectProtocols,
	})
}
