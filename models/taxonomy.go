package models

// Taxonomy node levels.
const (
	NodeCategory    = "category"
	NodeSubcategory = "subcategory"
	NodeService     = "service"
)

// TaxonomyNode is one entry in the category → subcategory → service tree.
type TaxonomyNode struct {
	ID       string          `yaml:"id" json:"id"`
	Label    string          `yaml:"label" json:"label"`
	Icon     string          `yaml:"icon" json:"icon,omitempty"`
	Keywords []string        `yaml:"keywords" json:"keywords,omitempty"`
	Children []*TaxonomyNode `yaml:"children" json:"children,omitempty"`

	Type     string `yaml:"-" json:"type"`
	ParentID string `yaml:"-" json:"parentId,omitempty"`
}

// Suggestion is a ranked autocomplete hit against the taxonomy.
type Suggestion struct {
	Type           string `json:"type"`
	ID             string `json:"id"`
	TaxonomyID     string `json:"taxonomyId"`
	Label          string `json:"label"`
	Icon           string `json:"icon,omitempty"`
	Score          int    `json:"score"`
	MatchedKeyword string `json:"matchedKeyword,omitempty"`
	ParentID       string `json:"parentId,omitempty"`
}
