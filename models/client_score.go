package models

import "fmt"

// Branch options (fixed dealership network)
var BranchOptions = []string{"Córdoba", "Sinsacate", "Pilar", "Arroyito", "Santa Rosa"}

// Technology profile tiers
var ProfileOptions = []string{"Tipo 1", "Tipo 2", "Tipo 3"}

// ClientScore is one client's evaluation inside a single category. The JSON
// field names are the persisted wire names and must stay stable across
// deployments sharing a data file.
//
// The document id (ClientID) is supplied by the field staff and is immutable
// after creation. Name, branch and profile are editable afterwards; the
// score fields are written once at creation and never edited.
type ClientScore struct {
	ClientID string `json:"ID_Cliente"`
	Name     string `json:"Cliente"`
	Category string `json:"Categoria_Evaluacion"`
	Branch   string `json:"Sucursal"`
	Profile  string `json:"Perfil_Tecnologico"`

	// Scores maps catalog item keys (GR_Item_1, ...) to obtained points.
	// The populated key set is exactly the item set of Category.
	Scores map[string]int `json:"Scores"`

	// Recommendations is the advisor's improvement plan captured on the
	// analysis page.
	Recommendations string `json:"Recomendaciones,omitempty"`
}

// IsValidBranch checks if the branch is one of the fixed options.
func IsValidBranch(branch string) bool {
	for _, b := range BranchOptions {
		if b == branch {
			return true
		}
	}
	return false
}

// IsValidProfile checks if the profile tier is one of the fixed options.
func IsValidProfile(profile string) bool {
	for _, p := range ProfileOptions {
		if p == profile {
			return true
		}
	}
	return false
}

// Validate checks the record against the catalog: metadata enums, the exact
// item set of the chosen category, and per-item bounds. Items from other
// categories are rejected rather than silently ignored, so a stored document
// only ever carries its own category's fields.
func (cs *ClientScore) Validate() error {
	if cs.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	if cs.Name == "" {
		return fmt.Errorf("client name is required")
	}
	category, ok := CategoryByName(cs.Category)
	if !ok {
		return fmt.Errorf("unknown evaluation category: %s", cs.Category)
	}
	if !IsValidBranch(cs.Branch) {
		return fmt.Errorf("invalid branch: %s", cs.Branch)
	}
	if !IsValidProfile(cs.Profile) {
		return fmt.Errorf("invalid technology profile: %s", cs.Profile)
	}

	for _, item := range category.Items {
		value, ok := cs.Scores[item.Key]
		if !ok {
			return fmt.Errorf("missing score for item %s", item.Key)
		}
		if value < 0 || value > item.MaxPoints {
			return fmt.Errorf("score for item %s must be between 0 and %d, got %d", item.Key, item.MaxPoints, value)
		}
	}
	for key := range cs.Scores {
		if _, ok := category.Item(key); !ok {
			return fmt.Errorf("item %s does not belong to category %s", key, cs.Category)
		}
	}
	return nil
}
