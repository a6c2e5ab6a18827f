package filters

import (
	"eventhub/models"
	"eventhub/services/taxonomy"
)

// FilterService builds and checks the filter panel for a search context.
type FilterService interface {
	Generate(sc models.SearchContext) models.FilterSchema
	Validate(schema models.FilterSchema, selections map[string]any) models.ValidationResult
}

// DefaultFilterService is the production implementation.
type DefaultFilterService struct {
	Taxonomy *taxonomy.Taxonomy
}

func NewDefaultFilterService(tx *taxonomy.Taxonomy) *DefaultFilterService {
	return &DefaultFilterService{Taxonomy: tx}
}
