package handlers

import (
	"errors"
	"net/http"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"
	"smartfarm_app_go/services"

	"github.com/labstack/echo/v4"
)

// SaleHandler serves the sales ledger endpoints.
type SaleHandler struct {
	store *db.Store
	cfg   *config.Config
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(store *db.Store, cfg *config.Config) *SaleHandler {
	return &SaleHandler{store: store, cfg: cfg}
}

// List returns the ledger, optionally filtered by client name.
func (h *SaleHandler) List(c echo.Context) error {
	clientName := c.QueryParam("client_name")

	var (
		sales []models.Sale
		err   error
	)
	if clientName != "" {
		sales, err = services.ListSalesByClient(h.store, h.cfg, clientName)
	} else {
		sales, err = services.ListSales(h.store, h.cfg)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch sales records",
		})
	}
	return c.JSON(http.StatusOK, sales)
}

// Create appends a new prospect/sale to the ledger.
func (h *SaleHandler) Create(c echo.Context) error {
	sale := new(models.Sale)
	if err := c.Bind(sale); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.AppendSale(h.store, h.cfg, sale); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found. Register the client before recording sales.",
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, sale)
}

type salesChangesRequest struct {
	Edits     map[string]services.SaleEdit `json:"edits"`
	Deletions []string                     `json:"deletions"`
}

type salesChangesResponse struct {
	Deleted int `json:"deleted"`
	Updated int `json:"updated"`
}

// ApplyChanges runs the combined edit+delete workflow in a single save.
func (h *SaleHandler) ApplyChanges(c echo.Context) error {
	var req salesChangesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	deleted, updated, err := services.ApplySalesChanges(h.store, h.cfg, req.Edits, req.Deletions)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, salesChangesResponse{Deleted: deleted, Updated: updated})
}

// Summary returns the financial KPIs over the whole ledger, or over one
// client's records when client_name is supplied.
func (h *SaleHandler) Summary(c echo.Context) error {
	clientName := c.QueryParam("client_name")

	var (
		sales []models.Sale
		err   error
	)
	if clientName != "" {
		sales, err = services.ListSalesByClient(h.store, h.cfg, clientName)
	} else {
		sales, err = services.ListSales(h.store, h.cfg)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch sales records",
		})
	}
	return c.JSON(http.StatusOK, services.GetSalesSummary(sales))
}
