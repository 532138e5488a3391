package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"smartfarm_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCatalogHandlerList(t *testing.T) {
	h := NewCatalogHandler()

	_, c, rec := setupEcho(http.MethodGet, "/api/catalog", nil)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []catalogCategoryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 3)
	for _, category := range categories {
		assert.Equal(t, 150, category.TotalMax)
	}
}

func TestCatalogHandlerGet(t *testing.T) {
	h := NewCatalogHandler()

	t.Run("Known category", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/catalog/Granos", nil)
		c.SetParamNames("name")
		c.SetParamValues(models.CategoryGranos)

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var category catalogCategoryResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
		assert.Len(t, category.Items, 16)
	})

	t.Run("Unknown category", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/catalog/Horticultura", nil)
		c.SetParamNames("name")
		c.SetParamValues("Horticultura")

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogHandlerOptions(t *testing.T) {
	h := NewCatalogHandler()

	_, c, rec := setupEcho(http.MethodGet, "/api/catalog/options", nil)
	assert.NoError(t, h.Options(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var opts optionsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, models.CategoryNames(), opts.Categories)
	assert.Contains(t, opts.Branches, "Sinsacate")
	assert.Contains(t, opts.Profiles, "Tipo 2")
	assert.Contains(t, opts.Protocols, "ExactApply")
}

func TestReportHandler(t *testing.T) {
	store, cfg := setupTestStore(t)
	h := NewReportHandler(store, cfg)
	seedClient(t, store, cfg, "123456", "Estancia La Paz", models.CategoryGranos, nil)

	_, c, rec := setupEcho(http.MethodGet, "/api/reports/scores", nil)
	assert.NoError(t, h.ScoreReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "informe_smartfarm_")
	assert.NotEmpty(t, rec.Body.Bytes())
}
