package search

import (
	"context"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"

	"go.uber.org/zap"
)

// SearchService runs vendor discovery queries.
type SearchService interface {
	Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error)
	Validate(params models.SearchParams) models.ValidationResult
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Repo   vendorRepo.VendorRepository
	Logger *zap.Logger
}

func NewDefaultSearchService(repo vendorRepo.VendorRepository, logger *zap.Logger) *DefaultSearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultSearchService{Repo: repo, Logger: logger}
}
