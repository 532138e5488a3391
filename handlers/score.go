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

// ScoreHandler serves the client-score endpoints. The store handle is
// injected so handlers never reach for ambient state.
type ScoreHandler struct {
	store *db.Store
	cfg   *config.Config
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(store *db.Store, cfg *config.Config) *ScoreHandler {
	return &ScoreHandler{store: store, cfg: cfg}
}

// Create registers a new client evaluation.
func (h *ScoreHandler) Create(c echo.Context) error {
	score := new(models.ClientScore)
	if err := c.Bind(score); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.CreateClientScore(h.store, h.cfg, score); err != nil {
		if errors.Is(err, services.ErrDuplicateClientID) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "Client ID '" + score.ClientID + "' already exists. Please use a unique ID.",
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, score)
}

// List returns all client evaluations, optionally filtered by category.
func (h *ScoreHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	var (
		scores []models.ClientScore
		err    error
	)
	if category != "" {
		if !models.IsValidCategory(category) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Unknown evaluation category: " + category,
			})
		}
		scores, err = services.ListClientScoresByCategory(h.store, h.cfg, category)
	} else {
		scores, err = services.ListClientScores(h.store, h.cfg)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch client scores",
		})
	}
	return c.JSON(http.StatusOK, scores)
}

// Get returns one client evaluation by id.
func (h *ScoreHandler) Get(c echo.Context) error {
	score, err := services.GetClientScore(h.store, h.cfg, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch client score",
		})
	}
	return c.JSON(http.StatusOK, score)
}

// UpdateMetadata edits name/branch/profile on an existing evaluation. The
// id, category and score fields are not editable.
func (h *ScoreHandler) UpdateMetadata(c echo.Context) error {
	var update services.ClientMetadataUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.UpdateClientMetadata(h.store, h.cfg, c.Param("id"), update); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found",
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	score, err := services.GetClientScore(h.store, h.cfg, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch client score",
		})
	}
	return c.JSON(http.StatusOK, score)
}

type recommendationsRequest struct {
	Text string `json:"text"`
}

// SaveRecommendations stores the advisor's improvement plan for a client.
func (h *ScoreHandler) SaveRecommendations(c echo.Context) error {
	var req recommendationsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.SaveRecommendations(h.store, h.cfg, c.Param("id"), req.Text); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save recommendations",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a client evaluation.
func (h *ScoreHandler) Delete(c echo.Context) error {
	deleted, err := services.DeleteClientScore(h.store, h.cfg, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete client score",
		})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Client not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

type scoreBreakdownResponse struct {
	ClientID   string                `json:"client_id"`
	ClientName string                `json:"client_name"`
	Category   string                `json:"category"`
	Total      int                   `json:"total"`
	TotalMax   int                   `json:"total_max"`
	Percentage float64               `json:"percentage"`
	Items      []services.ItemResult `json:"items"`
}

// Breakdown returns the aggregated score analysis for one client: total,
// percentage of maximum and the per-item comparison. Derived values are
// recomputed on every read.
func (h *ScoreHandler) Breakdown(c echo.Context) error {
	score, err := services.GetClientScore(h.store, h.cfg, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch client score",
		})
	}

	category, ok := models.CategoryByName(score.Category)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Client references an unknown category: " + score.Category,
		})
	}

	return c.JSON(http.StatusOK, scoreBreakdownResponse{
		ClientID:   score.ClientID,
		ClientName: score.Name,
		Category:   score.Category,
		Total:      services.ScoreTotal(score, category),
		TotalMax:   category.TotalMax(),
		Percentage: services.ScorePercentage(score, category),
		Items:      services.ScoreBreakdown(score, category),
	})
}
