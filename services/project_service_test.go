package services

import (
	"testing"
	"time"

	"smartfarm_app_go/db"
	"smartfarm_app_go/models"

	"github.com/stretchr/testify/assert"
)

func testProject(clientName string) *models.Project {
	return &models.Project{
		ClientName:     clientName,
		Protocol:       "ExactApply",
		EvalName:       "Evaluación dosis variable",
		EvalLocation:   "Lote 14, Córdoba",
		Planning:       models.ProjectStage{Status: models.StageStatusCompleted, Hours: 4},
		DataCollection: models.ProjectStage{Status: models.StageStatusInProgress, Hours: 6},
		Reporting:      models.ProjectStage{Status: models.StageStatusNotStarted, Hours: 0},
	}
}

// seedProject writes an engagement document directly, bypassing SaveProject
// so tests can control the stored timestamp.
func seedProject(t *testing.T, store *db.Store, path string, project models.Project) {
	t.Helper()
	doc, err := db.Encode(project)
	assert.NoError(t, err)
	assert.NoError(t, store.Replace(path, project.ID, doc))
}

func TestSaveProjectInsert(t *testing.T) {
	store, cfg := setupServiceTest(t)
	client := newTestScore("111", "Estancia La Paz", models.CategoryGranos, nil)
	client.Branch = "Sinsacate"
	assert.NoError(t, CreateClientScore(store, cfg, client))

	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	original := nowFunc
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = original }()

	saved, err := SaveProject(store, cfg, testProject("Estancia La Paz"))
	assert.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, fixed.Format(time.RFC3339), saved.CreatedAt)
	assert.Equal(t, 10, saved.TotalHours)
	// Branch and profile come from the client's score record
	assert.Equal(t, "Sinsacate", saved.Branch)
	assert.Equal(t, models.CategoryGranos, saved.Profile)

	stored, err := GetProject(store, cfg, saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, saved.EvalName, stored.EvalName)
}

func TestSaveProjectUpdate(t *testing.T) {
	store, cfg := setupServiceTest(t)
	assert.NoError(t, CreateClientScore(store, cfg, newTestScore("111", "Estancia La Paz", models.CategoryGranos, nil)))

	saved, err := SaveProject(store, cfg, testProject("Estancia La Paz"))
	assert.NoError(t, err)

	// Saving again with the same id overwrites instead of inserting
	saved.DataCollection = models.ProjectStage{Status: models.StageStatusCompleted, Hours: 9}
	saved.Reporting = models.ProjectStage{Status: models.StageStatusCompleted, Hours: 2}
	updated, err := SaveProject(store, cfg, saved)
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, 15, updated.TotalHours)

	projects, err := ListProjects(store, cfg)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.True(t, projects[0].IsCompleted())
}

func TestSaveProjectValidation(t *testing.T) {
	store, cfg := setupServiceTest(t)
	assert.NoError(t, CreateClientScore(store, cfg, newTestScore("111", "Estancia La Paz", models.CategoryGranos, nil)))

	// Unregistered client
	_, err := SaveProject(store, cfg, testProject("Nadie"))
	assert.ErrorIs(t, err, ErrClientNotFound)

	// Invalid protocol
	p := testProject("Estancia La Paz")
	p.Protocol = "Drone Mapping"
	_, err = SaveProject(store, cfg, p)
	assert.Error(t, err)

	assert.Equal(t, 0, store.Count(cfg.ProjectsCollectionPath()))
}

func TestGetProjectNotFound(t *testing.T) {
	store, cfg := setupServiceTest(t)
	_, err := GetProject(store, cfg, "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestListProjectsNewestFirst(t *testing.T) {
	store, cfg := setupServiceTest(t)
	path := cfg.ProjectsCollectionPath()

	for _, p := range []struct{ id, createdAt string }{
		{"p-old", "2024-01-01T10:00:00Z"},
		{"p-new", "2024-06-01T10:00:00Z"},
		{"p-legacy", "2024-03-15 09:30:00"}, // older deployment format
	} {
		project := *testProject("Estancia La Paz")
		project.ID = p.id
		project.CreatedAt = p.createdAt
		seedProject(t, store, path, project)
	}

	projects, err := ListProjects(store, cfg)
	assert.NoError(t, err)
	assert.Len(t, projects, 3)
	assert.Equal(t, "p-new", projects[0].ID)
	assert.Equal(t, "p-legacy", projects[1].ID)
	assert.Equal(t, "p-old", projects[2].ID)
}

func TestLatestProjectForClient(t *testing.T) {
	store, cfg := setupServiceTest(t)
	path := cfg.ProjectsCollectionPath()

	t.Run("no projects", func(t *testing.T) {
		latest, err := LatestProjectForClient(store, cfg, "Estancia La Paz")
		assert.NoError(t, err)
		assert.Nil(t, latest)
	})

	jan := *testProject("Estancia La Paz")
	jan.ID = "p-jan"
	jan.CreatedAt = "2024-01-01T10:00:00Z"
	seedProject(t, store, path, jan)

	jun := *testProject("Estancia La Paz")
	jun.ID = "p-jun"
	jun.CreatedAt = "2024-06-01T10:00:00Z"
	seedProject(t, store, path, jun)

	other := *testProject("Don Pedro")
	other.ID = "p-other"
	other.CreatedAt = "2024-12-01T10:00:00Z"
	seedProject(t, store, path, other)

	t.Run("picks most recent for the client", func(t *testing.T) {
		latest, err := LatestProjectForClient(store, cfg, "Estancia La Paz")
		assert.NoError(t, err)
		assert.NotNil(t, latest)
		assert.Equal(t, "p-jun", latest.ID)
	})

	t.Run("unparsable entries are discarded", func(t *testing.T) {
		broken := *testProject("Estancia La Paz")
		broken.ID = "p-broken"
		broken.CreatedAt = "hace dos semanas"
		seedProject(t, store, path, broken)

		latest, err := LatestProjectForClient(store, cfg, "Estancia La Paz")
		assert.NoError(t, err)
		assert.Equal(t, "p-jun", latest.ID)
	})
}

func TestLatestProjectAllUnparsableFallsBackToLexicographic(t *testing.T) {
	store, cfg := setupServiceTest(t)
	path := cfg.ProjectsCollectionPath()

	for _, p := range []struct{ id, createdAt string }{
		{"p-a", "aaa"},
		{"p-b", "zzz"},
		{"p-c", "mmm"},
	} {
		project := *testProject("Estancia La Paz")
		project.ID = p.id
		project.CreatedAt = p.createdAt
		seedProject(t, store, path, project)
	}

	latest, err := LatestProjectForClient(store, cfg, "Estancia La Paz")
	assert.NoError(t, err)
	assert.Equal(t, "p-b", latest.ID)
}

func TestBulkDeleteProjects(t *testing.T) {
	store, cfg := setupServiceTest(t)
	path := cfg.ProjectsCollectionPath()

	for _, id := range []string{"p1", "p2", "p3"} {
		project := *testProject("Estancia La Paz")
		project.ID = id
		project.CreatedAt = "2024-01-01T10:00:00Z"
		seedProject(t, store, path, project)
	}

	// Missing ids are skipped, not errors
	deleted, err := BulkDeleteProjects(store, cfg, []string{"p1", "p3", "missing"})
	assert.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, 1, store.Count(path))

	// The deletion reached the backing file
	reloaded := db.Open(store.Path())
	assert.Equal(t, 1, reloaded.Count(path))

	// Deleting nothing is (0, nil)
	deleted, err = BulkDeleteProjects(store, cfg, []string{"missing"})
	assert.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestGetProjectSummary(t *testing.T) {
	store, cfg := setupServiceTest(t)
	path := cfg.ProjectsCollectionPath()

	done := *testProject("Estancia La Paz")
	done.ID = "p-done"
	done.CreatedAt = "2024-01-01T10:00:00Z"
	done.Reporting = models.ProjectStage{Status: models.StageStatusCompleted, Hours: 3}
	seedProject(t, store, path, done)

	open := *testProject("Estancia La Paz")
	open.ID = "p-open"
	open.CreatedAt = "2024-02-01T10:00:00Z"
	seedProject(t, store, path, open)

	summary, err := GetProjectSummary(store, cfg)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalProjects)
	assert.Equal(t, 1, summary.CompletedProjects)
	assert.Equal(t, 8, summary.PlanningHours)
	assert.Equal(t, 12, summary.DataCollectionHours)
	assert.Equal(t, 3, summary.ReportingHours)
	assert.Equal(t, 23, summary.TotalHours)
}
