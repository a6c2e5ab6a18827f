package location

import (
	"context"
	"errors"
	"sort"
	"strings"

	"eventhub/models"
	"eventhub/utils"
)

// ErrUnknownCity is returned when a city id matches no known city.
var ErrUnknownCity = errors.New("unknown city")

const (
	defaultCityLimit = 10
	maxCityLimit     = 50
	defaultAreaLimit = 50
	maxAreaLimit     = 200
)

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// SearchCities matches q against city names; prefix matches rank ahead of substring matches.
// An empty q lists cities in source order.
func (s *DefaultLocationService) SearchCities(ctx context.Context, q string, limit int) []models.City {
	limit = clampLimit(limit, defaultCityLimit, maxCityLimit)
	needle := utils.Fold(q)
	aliasNeedle := NormalizeCity(q)

	type hit struct {
		city   models.City
		prefix bool
	}
	var hits []hit
	seen := make(map[string]struct{})
	for _, p := range s.Places.FetchCities(ctx) {
		id := CityID(p.Name)
		if _, dup := seen[id]; dup {
			continue
		}
		folded := utils.Fold(p.Name)
		canonical := NormalizeCity(p.Name)
		matched := needle == "" || strings.Contains(folded, needle) || strings.Contains(canonical, needle) ||
			canonical == aliasNeedle
		if !matched {
			continue
		}
		seen[id] = struct{}{}
		hits = append(hits, hit{
			city:   models.City{ID: id, Name: p.Name},
			prefix: needle == "" || strings.HasPrefix(folded, needle) || strings.HasPrefix(canonical, needle) ||
				canonical == aliasNeedle,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].prefix && !hits[j].prefix
	})

	out := make([]models.City, 0, limit)
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		out = append(out, h.city)
	}
	return out
}

// AreasForCity lists the areas of the city identified by cityID.
func (s *DefaultLocationService) AreasForCity(ctx context.Context, cityID string, limit int) ([]models.Area, error) {
	return s.SearchAreas(ctx, cityID, "", limit)
}

// SearchAreas lists the areas of cityID whose name contains q.
func (s *DefaultLocationService) SearchAreas(ctx context.Context, cityID, q string, limit int) ([]models.Area, error) {
	limit = clampLimit(limit, defaultAreaLimit, maxAreaLimit)
	city := s.resolveCity(ctx, cityID)
	if NormalizeCity(city) == "" {
		return nil, ErrUnknownCity
	}
	id := CityID(city)
	needle := utils.Fold(q)

	out := make([]models.Area, 0)
	for _, p := range s.Places.FetchAreas(ctx, city) {
		if len(out) == limit {
			break
		}
		if needle != "" && !strings.Contains(utils.Fold(p.Name), needle) {
			continue
		}
		out = append(out, models.Area{
			ID:     id + ":" + utils.Slug(p.Name),
			Name:   p.Name,
			CityID: id,
		})
	}
	return out, nil
}

// resolveCity maps a city id back to the city name areas are fetched and cached under.
// Curated cities are checked before the source so known ids never cost a lookup.
func (s *DefaultLocationService) resolveCity(ctx context.Context, cityID string) string {
	raw := strings.TrimSpace(cityID)
	if raw == "" {
		return ""
	}
	want := CityID(raw)
	for _, p := range FallbackCities() {
		if CityID(p.Name) == want {
			return p.Name
		}
	}
	for _, p := range s.Places.FetchCities(ctx) {
		if CityID(p.Name) == want {
			return p.Name
		}
	}
	return strings.ReplaceAll(raw, "-", " ")
}
