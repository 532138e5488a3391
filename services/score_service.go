package services

import (
	"errors"
	"fmt"
	"sort"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/models"
)

// Client score errors
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrDuplicateClientID = errors.New("client id already exists")
)

// RecommendationsMaxLen caps the analysis-page recommendation text.
const RecommendationsMaxLen = 2000

// ClientMetadataUpdate carries the fields the editing surface may change.
// Nil means "leave as is". The client id, category and score fields are not
// editable after creation.
type ClientMetadataUpdate struct {
	Name    *string `json:"Cliente,omitempty"`
	Branch  *string `json:"Sucursal,omitempty"`
	Profile *string `json:"Perfil_Tecnologico,omitempty"`
}

// CreateClientScore validates and stores a new client evaluation. A client
// id already present in the collection is rejected without touching the
// store.
func CreateClientScore(store *db.Store, cfg *config.Config, score *models.ClientScore) error {
	score.Name = CleanText(score.Name, 0)
	if err := score.Validate(); err != nil {
		return err
	}

	doc, err := db.Encode(score)
	if err != nil {
		return fmt.Errorf("failed to encode client score: %w", err)
	}
	if err := store.Put(cfg.ScoresCollectionPath(), score.ClientID, doc); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return ErrDuplicateClientID
		}
		return err
	}
	return nil
}

// GetClientScore returns one client evaluation by id.
func GetClientScore(store *db.Store, cfg *config.Config, clientID string) (*models.ClientScore, error) {
	doc, ok := store.Get(cfg.ScoresCollectionPath(), clientID)
	if !ok {
		return nil, ErrClientNotFound
	}
	var score models.ClientScore
	if err := db.Decode(doc, &score); err != nil {
		return nil, fmt.Errorf("failed to decode client score %s: %w", clientID, err)
	}
	return &score, nil
}

// ListClientScores returns every client evaluation, ordered by client id.
func ListClientScores(store *db.Store, cfg *config.Config) ([]models.ClientScore, error) {
	collection := store.Collection(cfg.ScoresCollectionPath())

	scores := make([]models.ClientScore, 0, len(collection))
	for id, doc := range collection {
		var score models.ClientScore
		if err := db.Decode(doc, &score); err != nil {
			return nil, fmt.Errorf("failed to decode client score %s: %w", id, err)
		}
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].ClientID < scores[j].ClientID })
	return scores, nil
}

// ListClientScoresByCategory returns the evaluations recorded under one
// category, ordered by client id.
func ListClientScoresByCategory(store *db.Store, cfg *config.Config, category string) ([]models.ClientScore, error) {
	all, err := ListClientScores(store, cfg)
	if err != nil {
		return nil, err
	}
	filtered := all[:0]
	for _, score := range all {
		if score.Category == category {
			filtered = append(filtered, score)
		}
	}
	return filtered, nil
}

// UpdateClientMetadata merges the supplied metadata fields into an existing
// evaluation. Untouched fields keep their prior values.
func UpdateClientMetadata(store *db.Store, cfg *config.Config, clientID string, update ClientMetadataUpdate) error {
	fields := db.Document{}
	if update.Name != nil {
		name := CleanText(*update.Name, 0)
		if name == "" {
			return fmt.Errorf("client name must not be empty")
		}
		fields["Cliente"] = name
	}
	if update.Branch != nil {
		if !models.IsValidBranch(*update.Branch) {
			return fmt.Errorf("invalid branch: %s", *update.Branch)
		}
		fields["Sucursal"] = *update.Branch
	}
	if update.Profile != nil {
		if !models.IsValidProfile(*update.Profile) {
			return fmt.Errorf("invalid technology profile: %s", *update.Profile)
		}
		fields["Perfil_Tecnologico"] = *update.Profile
	}
	if len(fields) == 0 {
		return nil
	}

	if err := store.Update(cfg.ScoresCollectionPath(), clientID, fields); err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// SaveRecommendations stores the advisor's improvement plan on the client's
// evaluation document.
func SaveRecommendations(store *db.Store, cfg *config.Config, clientID, text string) error {
	fields := db.Document{"Recomendaciones": CleanText(text, RecommendationsMaxLen)}
	if err := store.Update(cfg.ScoresCollectionPath(), clientID, fields); err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// DeleteClientScore removes an evaluation. A missing id is a no-op reported
// as false.
func DeleteClientScore(store *db.Store, cfg *config.Config, clientID string) (bool, error) {
	return store.Delete(cfg.ScoresCollectionPath(), clientID)
}

// ClientNames returns a name -> id map for client selectors.
func ClientNames(store *db.Store, cfg *config.Config) (map[string]string, error) {
	scores, err := ListClientScores(store, cfg)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(scores))
	for _, score := range scores {
		if score.Name != "" {
			names[score.Name] = score.ClientID
		}
	}
	return names, nil
}
