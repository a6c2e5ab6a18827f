package dynamic

import (
	"context"
	"fmt"
	"sort"

	"eventhub/models"
	"eventhub/services/location"
	"eventhub/utils"

	"go.uber.org/zap"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

// cached serves key from the store, or computes it with load and stores the result.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *DefaultDynamicService, key string, load func() (T, error)) (T, error) {
	var out T
	if s.Cache != nil {
		hit, err := s.Cache.Get(ctx, key, &out)
		if err != nil {
			s.Logger.Warn("Lookup cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return out, nil
		}
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, out, CacheTTL); err != nil {
			s.Logger.Warn("Lookup cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// ServiceTypes lists every taxonomy service with its vendor count, followed by
// vendor service types the taxonomy does not know.
func (s *DefaultDynamicService) ServiceTypes(ctx context.Context) ([]models.ServiceTypeOption, error) {
	return cached(ctx, s, "dynamic:service_types", func() ([]models.ServiceTypeOption, error) {
		counts, err := s.Repo.ServiceTypeCounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load service type counts: %w", err)
		}
		byType := make(map[string]int64, len(counts))
		for _, c := range counts {
			byType[c.Value] += c.Count
		}

		out := []models.ServiceTypeOption{}
		for _, svc := range s.Taxonomy.Services() {
			cat, _ := s.Taxonomy.CategoryOf(svc.ID)
			out = append(out, models.ServiceTypeOption{
				ID:          svc.ID,
				Label:       svc.Label,
				Icon:        svc.Icon,
				Category:    cat,
				VendorCount: byType[svc.ID],
			})
			delete(byType, svc.ID)
		}
		for _, c := range counts {
			if _, unknown := byType[c.Value]; unknown && c.Value != "" {
				out = append(out, models.ServiceTypeOption{
					ID:          c.Value,
					Label:       utils.TitleCase(c.Value),
					VendorCount: c.Count,
				})
				delete(byType, c.Value)
			}
		}
		return out, nil
	})
}

// Cities merges vendor cities across aliases and spelling variants.
func (s *DefaultDynamicService) Cities(ctx context.Context) ([]models.CityOption, error) {
	return cached(ctx, s, "dynamic:cities", func() ([]models.CityOption, error) {
		counts, err := s.Repo.CityCounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load city counts: %w", err)
		}

		byID := map[string]*models.CityOption{}
		var order []string
		for _, c := range counts {
			id := location.CityID(c.Value)
			if id == "" {
				continue
			}
			opt, ok := byID[id]
			if !ok {
				// counts arrive busiest first, so the first spelling seen wins.
				opt = &models.CityOption{ID: id, Name: utils.TitleCase(utils.Fold(c.Value))}
				byID[id] = opt
				order = append(order, id)
			}
			opt.VendorCount += c.Count
		}

		out := make([]models.CityOption, 0, len(order))
		for _, id := range order {
			out = append(out, *byID[id])
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].VendorCount != out[j].VendorCount {
				return out[i].VendorCount > out[j].VendorCount
			}
			return out[i].Name < out[j].Name
		})
		return out, nil
	})
}

func (s *DefaultDynamicService) PriceRanges(ctx context.Context) ([]models.PriceRangeOption, error) {
	return cached(ctx, s, "dynamic:price_ranges", func() ([]models.PriceRangeOption, error) {
		stats, err := s.Repo.PriceStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load price stats: %w", err)
		}
		out := make([]models.PriceRangeOption, 0, len(stats))
		for _, st := range stats {
			out = append(out, models.PriceRangeOption{
				ServiceType: st.ServiceType,
				Label:       s.serviceLabel(st.ServiceType),
				Min:         st.Min,
				Max:         st.Max,
				Avg:         st.Avg,
				VendorCount: st.Count,
			})
		}
		return out, nil
	})
}

// SearchSuggestions proposes the busiest service types and cities as starting searches.
func (s *DefaultDynamicService) SearchSuggestions(ctx context.Context, limit int) ([]models.Suggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	limit = min(limit, maxSuggestionLimit)

	key := fmt.Sprintf("dynamic:search_suggestions:%d", limit)
	return cached(ctx, s, key, func() ([]models.Suggestion, error) {
		types, err := s.Repo.ServiceTypeCounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load service type counts: %w", err)
		}
		cities, err := s.Cities(ctx)
		if err != nil {
			return nil, err
		}

		out := []models.Suggestion{}
		for _, t := range types {
			if t.Value == "" {
				continue
			}
			sg := models.Suggestion{
				Type:       models.NodeService,
				ID:         models.NodeService + ":" + t.Value,
				TaxonomyID: t.Value,
				Label:      s.serviceLabel(t.Value),
				Score:      int(t.Count),
			}
			if node, ok := s.Taxonomy.Node(t.Value); ok {
				sg.Icon = node.Icon
				sg.ParentID = node.ParentID
			}
			out = append(out, sg)
		}
		for _, c := range cities {
			out = append(out, models.Suggestion{
				Type:  "city",
				ID:    "city:" + c.ID,
				Label: c.Name,
				Score: int(c.VendorCount),
			})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
		if len(out) > limit {
			out = out[:limit]
		}
		return out, nil
	})
}

func (s *DefaultDynamicService) FilterStats(ctx context.Context) (models.FilterStats, error) {
	return cached(ctx, s, "dynamic:filter_stats", func() (models.FilterStats, error) {
		st, err := s.Repo.Stats(ctx)
		if err != nil {
			return models.FilterStats{}, fmt.Errorf("failed to load vendor stats: %w", err)
		}
		types, err := s.Repo.ServiceTypeCounts(ctx)
		if err != nil {
			return models.FilterStats{}, fmt.Errorf("failed to load service type counts: %w", err)
		}
		cities, err := s.Cities(ctx)
		if err != nil {
			return models.FilterStats{}, err
		}
		return models.FilterStats{
			TotalVendors:     st.Total,
			VerifiedVendors:  st.Verified,
			VendorsWithDeals: st.WithDeals,
			AverageRating:    st.AvgRating,
			PriceMin:         st.MinPrice,
			PriceMax:         st.MaxPrice,
			ServiceTypes:     len(types),
			Cities:           len(cities),
		}, nil
	})
}

func (s *DefaultDynamicService) serviceLabel(id string) string {
	if node, ok := s.Taxonomy.Node(id); ok {
		return node.Label
	}
	return utils.TitleCase(id)
}

var _ DynamicService = (*DefaultDynamicService)(nil)
