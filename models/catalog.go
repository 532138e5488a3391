package models

// CatalogItem is one scoring criterion inside a category rubric.
//
// Key is the permanent internal identifier under which client scores are
// persisted. Titles are long natural-language strings and may be reworded,
// so they are display attributes only; documents never reference them.
// The keys reproduce the category-prefixed ordinals of earlier deployments
// (GR_Item_1, G_Item_1, AV_Item_1, ...) but are declared explicitly per item
// rather than derived from slice position, so reordering the catalog cannot
// silently reassign stored scores.
type CatalogItem struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	MaxPoints   int    `json:"max_points"`
	Description string `json:"description"`
}

// ScoringCategory is the rubric for one evaluation category. Static
// configuration: it must be identical across all deployments reading the
// same stored documents.
type ScoringCategory struct {
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

// TotalMax returns the maximum obtainable score for the category.
func (c *ScoringCategory) TotalMax() int {
	total := 0
	for _, item := range c.Items {
		total += item.MaxPoints
	}
	return total
}

// Item looks up a catalog item by its internal key.
func (c *ScoringCategory) Item(key string) (*CatalogItem, bool) {
	for i := range c.Items {
		if c.Items[i].Key == key {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// ItemKeys returns the internal keys in catalog order.
func (c *ScoringCategory) ItemKeys() []string {
	keys := make([]string, len(c.Items))
	for i, item := range c.Items {
		keys[i] = item.Key
	}
	return keys
}

// CategoryByName returns the rubric for a category name.
func CategoryByName(name string) (*ScoringCategory, bool) {
	for i := range ScoringCatalog {
		if ScoringCatalog[i].Name == name {
			return &ScoringCatalog[i], true
		}
	}
	return nil, false
}

// CategoryNames returns all category names in catalog order.
func CategoryNames() []string {
	names := make([]string, len(ScoringCatalog))
	for i := range ScoringCatalog {
		names[i] = ScoringCatalog[i].Name
	}
	return names
}

// IsValidCategory checks if the category name exists in the catalog.
func IsValidCategory(name string) bool {
	_, ok := CategoryByName(name)
	return ok
}
