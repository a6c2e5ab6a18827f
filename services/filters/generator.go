package filters

import (
	"strings"

	"eventhub/models"
	"eventhub/utils"
)

const (
	maxHierarchyNodes = 3
	maxServiceOptions = 10
)

// Generate assembles the filter panel for sc. Every call returns fresh slices, so the
// caller may edit the schema freely.
func (s *DefaultFilterService) Generate(sc models.SearchContext) models.FilterSchema {
	schema := models.FilterSchema{
		Universal: UniversalFilters(),
		Specific:  []models.Filter{},
		Context:   contextFilters(sc),
		Hierarchy: s.hierarchy(sc),
	}

	serviceID := s.detectService(sc)
	if serviceID == "" {
		return schema
	}
	specific, budget := specificFilters(serviceID)
	applyBudget(schema.Universal, budget)
	schema.Specific = specific
	schema.DetectedService = serviceID
	return schema
}

// detectService prefers an explicit service category over the free-text query.
func (s *DefaultFilterService) detectService(sc models.SearchContext) string {
	if sc.Category != "" {
		if node, ok := s.Taxonomy.Node(sc.Category); ok && node.Type == models.NodeService {
			return node.ID
		}
	}
	if id, ok := s.Taxonomy.DetectService(sc.Query); ok {
		return id
	}
	return ""
}

func (s *DefaultFilterService) hierarchy(sc models.SearchContext) []models.HierarchyNode {
	nodes := []models.HierarchyNode{}
	restrictTo := ""
	if sc.Category != "" {
		if cat, ok := s.Taxonomy.CategoryOf(sc.Category); ok {
			restrictTo = cat
		}
	}

	for _, cat := range s.Taxonomy.Categories() {
		if len(nodes) == maxHierarchyNodes {
			break
		}
		if restrictTo != "" && cat.ID != restrictTo {
			continue
		}
		if restrictTo == "" && !s.Taxonomy.MatchesCategory(cat.ID, sc.Query) {
			continue
		}
		nodes = append(nodes, models.HierarchyNode{
			ID:       cat.ID,
			Label:    cat.Label,
			Icon:     cat.Icon,
			Children: s.categoryFilters(cat),
		})
	}
	return nodes
}

func (s *DefaultFilterService) categoryFilters(cat *models.TaxonomyNode) []models.Filter {
	vendorTypes := make([]models.FilterOption, 0, len(cat.Children))
	for _, sub := range cat.Children {
		vendorTypes = append(vendorTypes, models.FilterOption{Value: sub.ID, Label: sub.Label})
	}

	services := s.Taxonomy.ServicesUnder(cat.ID)
	if len(services) > maxServiceOptions {
		services = services[:maxServiceOptions]
	}
	offered := make([]models.FilterOption, 0, len(services))
	for _, svc := range services {
		offered = append(offered, models.FilterOption{Value: svc.ID, Label: svc.Label})
	}

	return []models.Filter{
		{ID: cat.ID + ".vendor_type", Label: "Vendor type", Type: models.FilterMultiSelect, Options: vendorTypes},
		{ID: cat.ID + ".services_offered", Label: "Services offered", Type: models.FilterMultiSelect, Options: offered},
	}
}

// contextFilters pins the location and event type the user already chose.
func contextFilters(sc models.SearchContext) []models.Filter {
	var out []models.Filter
	if loc := strings.TrimSpace(sc.Location); loc != "" {
		out = append(out, models.Filter{
			ID:     "location",
			Label:  "Location",
			Type:   models.FilterLocation,
			Value:  loc,
			Locked: true,
		})
	}
	if et := utils.Slug(sc.EventType); et != "" {
		opts := append([]models.FilterOption(nil), eventTypes...)
		if !hasOption(opts, et) {
			opts = append(opts, models.FilterOption{Value: et, Label: utils.TitleCase(strings.TrimSpace(sc.EventType))})
		}
		out = append(out, models.Filter{
			ID:      "event_type",
			Label:   "Event type",
			Type:    models.FilterSelect,
			Options: opts,
			Value:   et,
			Locked:  true,
		})
	}
	return out
}

func hasOption(opts []models.FilterOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
