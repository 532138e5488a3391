package handlers

import (
	"fmt"
	"net/http"
	"time"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the Excel score report.
type ReportHandler struct {
	store *db.Store
	cfg   *config.Config
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(store *db.Store, cfg *config.Config) *ReportHandler {
	return &ReportHandler{store: store, cfg: cfg}
}

// ScoreReport streams the workbook with the overview sheet and the
// per-category detail sheets.
func (h *ReportHandler) ScoreReport(c echo.Context) error {
	buf, err := services.GenerateScoreReport(h.store, h.cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate report",
		})
	}

	filename := fmt.Sprintf("informe_smartfarm_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
