package dynamic

import (
	"context"
	"time"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"
	"eventhub/services/cache"
	"eventhub/services/taxonomy"

	"go.uber.org/zap"
)

// CacheTTL is how long every lookup response is reused.
const CacheTTL = 5 * time.Minute

// DynamicService serves the lookup lists the search UI builds its dropdowns from.
type DynamicService interface {
	ServiceTypes(ctx context.Context) ([]models.ServiceTypeOption, error)
	Cities(ctx context.Context) ([]models.CityOption, error)
	PriceRanges(ctx context.Context) ([]models.PriceRangeOption, error)
	SearchSuggestions(ctx context.Context, limit int) ([]models.Suggestion, error)
	FilterStats(ctx context.Context) (models.FilterStats, error)
}

// DefaultDynamicService is the production implementation.
type DefaultDynamicService struct {
	Repo     vendorRepo.VendorRepository
	Taxonomy *taxonomy.Taxonomy
	Cache    cache.Store
	Logger   *zap.Logger
}

func NewDefaultDynamicService(repo vendorRepo.VendorRepository, tx *taxonomy.Taxonomy, store cache.Store, logger *zap.Logger) *DefaultDynamicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDynamicService{Repo: repo, Taxonomy: tx, Cache: store, Logger: logger}
}
