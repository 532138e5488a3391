package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"

	"github.com/google/uuid"
)

// Project errors
var (
	ErrProjectNotFound = errors.New("project not found")
	// ErrPersistenceMismatch reports that a bulk delete was written but the
	// re-read document count does not match the expected one. This is
	// distinct from "nothing matched": proceeding silently would leave the
	// caller desynchronized from storage.
	ErrPersistenceMismatch = errors.New("post-delete verification failed: stored count does not match expected count")
)

// createdAtLayouts are the accepted timestamp formats, newest first. RFC3339
// is what this service writes; the others appear in documents written by
// earlier deployments.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseCreatedAt(value string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SaveProject inserts or overwrites an engagement. An empty id means insert
// with a generated id; a supplied id overwrites that document in place. The
// caller decides which case applies by tracking the id of the last project
// loaded for the selected client. Either way the timestamp is refreshed,
// total hours are recomputed, and branch/profile are denormalized from the
// client's score record.
func SaveProject(store *db.Store, cfg *config.Config, project *models.Project) (*models.Project, error) {
	project.EvalName = CleanText(project.EvalName, 0)
	project.EvalLocation = CleanText(project.EvalLocation, 0)
	if err := project.Validate(); err != nil {
		return nil, err
	}

	client, err := findClientByName(store, cfg, project.ClientName)
	if err != nil {
		return nil, err
	}
	project.Branch = client.Branch
	// The program tracks the evaluation category as the client's technology
	// profile on engagements.
	project.Profile = client.Category

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	project.TotalHours = project.ComputeTotalHours()
	project.CreatedAt = nowFunc().Format(time.RFC3339)

	doc, err := db.Encode(project)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project: %w", err)
	}
	if err := store.Replace(cfg.ProjectsCollectionPath(), project.ID, doc); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject returns one engagement by id.
func GetProject(store *db.Store, cfg *config.Config, id string) (*models.Project, error) {
	doc, ok := store.Get(cfg.ProjectsCollectionPath(), id)
	if !ok {
		return nil, ErrProjectNotFound
	}
	var project models.Project
	if err := db.Decode(doc, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	return &project, nil
}

// ListProjects returns every engagement, newest first. Unparsable timestamps
// sort by their raw string.
func ListProjects(store *db.Store, cfg *config.Config) ([]models.Project, error) {
	collection := store.Collection(cfg.ProjectsCollectionPath())

	projects := make([]models.Project, 0, len(collection))
	for id, doc := range collection {
		var project models.Project
		if err := db.Decode(doc, &project); err != nil {
			return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
		}
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool {
		ti, iok := parseCreatedAt(projects[i].CreatedAt)
		tj, jok := parseCreatedAt(projects[j].CreatedAt)
		if iok && jok {
			return ti.After(tj)
		}
		if iok != jok {
			return iok
		}
		return projects[i].CreatedAt > projects[j].CreatedAt
	})
	return projects, nil
}

// LatestProjectForClient returns the client's most recent engagement, or nil
// when the client has none. Entries with unparsable timestamps are
// discarded; if every entry is unparsable the raw timestamp strings are
// compared lexicographically instead.
func LatestProjectForClient(store *db.Store, cfg *config.Config, clientName string) (*models.Project, error) {
	all, err := ListProjects(store, cfg)
	if err != nil {
		return nil, err
	}

	var candidates []models.Project
	for _, project := range all {
		if project.ClientName == clientName {
			candidates = append(candidates, project)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var latest *models.Project
	var latestTime time.Time
	for i := range candidates {
		ts, ok := parseCreatedAt(candidates[i].CreatedAt)
		if !ok {
			continue
		}
		if latest == nil || ts.After(latestTime) {
			latest = &candidates[i]
			latestTime = ts
		}
	}
	if latest != nil {
		return latest, nil
	}

	// Every timestamp failed to parse: fall back to comparing the raw
	// strings.
	latest = &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidates[i].CreatedAt > latest.CreatedAt {
			latest = &candidates[i]
		}
	}
	return latest, nil
}

// BulkDeleteProjects removes the given ids, persists, then re-reads the
// backing file and verifies that exactly the expected number of documents
// remains. Ids that do not exist are skipped; deleting nothing is (0, nil),
// not an error.
func BulkDeleteProjects(store *db.Store, cfg *config.Config, ids []string) (int, error) {
	path := cfg.ProjectsCollectionPath()
	originalCount := store.Count(path)

	deleted := 0
	for _, id := range ids {
		ok, err := store.Delete(path, id)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
		}
	}
	if deleted == 0 {
		return 0, nil
	}

	// Read-after-write check: reload the file and compare counts.
	reloaded := db.Open(store.Path())
	if reloaded.Count(path) != originalCount-deleted {
		return deleted, ErrPersistenceMismatch
	}
	return deleted, nil
}

// ProjectSummary holds the dashboard KPIs of the projects page.
type ProjectSummary struct {
	TotalProjects       int `json:"total_projects"`
	CompletedProjects   int `json:"completed_projects"`
	TotalHours          int `json:"total_hours"`
	PlanningHours       int `json:"planning_hours"`
	DataCollectionHours int `json:"data_collection_hours"`
	ReportingHours      int `json:"reporting_hours"`
}

// GetProjectSummary aggregates the engagement collection into dashboard
// KPIs.
func GetProjectSummary(store *db.Store, cfg *config.Config) (*ProjectSummary, error) {
	projects, err := ListProjects(store, cfg)
	if err != nil {
		return nil, err
	}

	summary := &ProjectSummary{TotalProjects: len(projects)}
	for _, project := range projects {
		if project.IsCompleted() {
			summary.CompletedProjects++
		}
		summary.PlanningHours += project.Planning.Hours
		summary.DataCollectionHours += project.DataCollection.Hours
		summary.ReportingHours += project.Reporting.Hours
		summary.TotalHours += project.ComputeTotalHours()
	}
	return summary, nil
}

func findClientByName(store *db.Store, cfg *config.Config, clientName string) (*models.ClientScore, error) {
	scores, err := ListClientScores(store, cfg)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		if scores[i].Name == clientName {
			return &scores[i], nil
		}
	}
	return nil, ErrClientNotFound
}
