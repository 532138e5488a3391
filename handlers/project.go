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

// ProjectHandler serves the agronomy engagement endpoints.
type ProjectHandler struct {
	store *db.Store
	cfg   *config.Config
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(store *db.Store, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{store: store, cfg: cfg}
}

// List returns every engagement, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := services.ListProjects(h.store, h.cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch projects",
		})
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one engagement by id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := services.GetProject(h.store, h.cfg, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Project not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch project",
		})
	}
	return c.JSON(http.StatusOK, project)
}

// Save inserts a new engagement or overwrites an existing one. An empty id
// in the body means insert; a supplied id overwrites that document.
func (h *ProjectHandler) Save(c echo.Context) error {
	project := new(models.Project)
	if err := c.Bind(project); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	saved, err := services.SaveProject(h.store, h.cfg, project)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Client not found. Register the client before tracking projects.",
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, saved)
}

// Latest returns the most recent engagement for the client named in the
// query string, or 404 when the client has none.
func (h *ProjectHandler) Latest(c echo.Context) error {
	clientName := c.QueryParam("client_name")
	if clientName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "client_name query parameter is required",
		})
	}

	project, err := services.LatestProjectForClient(h.store, h.cfg, clientName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch projects",
		})
	}
	if project == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "No projects recorded for this client",
		})
	}
	return c.JSON(http.StatusOK, project)
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type bulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// BulkDelete removes the listed engagements and verifies persistence.
func (h *ProjectHandler) BulkDelete(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	deleted, err := services.BulkDeleteProjects(h.store, h.cfg, req.IDs)
	if err != nil {
		if errors.Is(err, services.ErrPersistenceMismatch) {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Deletion was written but verification failed. Reload and retry.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete projects",
		})
	}
	return c.JSON(http.StatusOK, bulkDeleteResponse{Deleted: deleted})
}

// Summary returns the dashboard KPIs of the projects page.
func (h *ProjectHandler) Summary(c echo.Context) error {
	summary, err := services.GetProjectSummary(h.store, h.cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch projects",
		})
	}
	return c.JSON(http.StatusOK, summary)
}
