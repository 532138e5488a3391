package handlers

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"
	"smartfarm_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func setupTestStore(t *testing.T) (*db.Store, *config.Config) {
	cfg := &config.Config{
		AppID:    "test_app",
		DataFile: filepath.Join(t.TempDir(), "data.json"),
	}
	return db.Open(cfg.DataFile), cfg
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// seedClient registers a valid evaluation with every item at zero plus the
// given overrides.
func seedClient(t *testing.T, store *db.Store, cfg *config.Config, clientID, name, categoryName string, overrides map[string]int) {
	t.Helper()
	category, ok := models.CategoryByName(categoryName)
	assert.True(t, ok)

	scores := make(map[string]int, len(category.Items))
	for _, item := range category.Items {
		scores[item.Key] = 0
	}
	for key, value := range overrides {
		scores[key] = value
	}

	err := services.CreateClientScore(store, cfg, &models.ClientScore{
		ClientID: clientID,
		Name:     name,
		Category: categoryName,
		Branch:   "Córdoba",
		Profile:  "Tipo 1",
		Scores:   scores,
	})
	assert.NoError(t, err)
}
