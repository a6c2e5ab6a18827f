package models

// Filter widget types.
const (
	FilterSelect      = "select"
	FilterToggle      = "toggle"
	FilterRange       = "range"
	FilterMultiSelect = "multiselect"
	FilterLocation    = "location"
)

// FilterOption is one choice of a select or multiselect filter.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BudgetPreset is a one-click budget band.
type BudgetPreset struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Filter describes one control of the search filter panel.
type Filter struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Type    string         `json:"type"`
	Options []FilterOption `json:"options,omitempty"`
	Min     *float64       `json:"min,omitempty"`
	Max     *float64       `json:"max,omitempty"`
	Step    float64        `json:"step,omitempty"`
	Presets []BudgetPreset `json:"presets,omitempty"`
	Default any            `json:"default,omitempty"`
	Value   any            `json:"value,omitempty"`
	Locked  bool           `json:"locked,omitempty"`
}

// Clone returns a deep copy, so callers may override bounds without touching shared defaults.
func (f Filter) Clone() Filter {
	c := f
	if f.Options != nil {
		c.Options = append([]FilterOption(nil), f.Options...)
	}
	if f.Presets != nil {
		c.Presets = append([]BudgetPreset(nil), f.Presets...)
	}
	if f.Min != nil {
		v := *f.Min
		c.Min = &v
	}
	if f.Max != nil {
		v := *f.Max
		c.Max = &v
	}
	return c
}

// HierarchyNode is a taxonomy category with its drill-down filters.
type HierarchyNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Icon     string   `json:"icon,omitempty"`
	Children []Filter `json:"children"`
}

// SearchContext is the client state that drives filter generation.
type SearchContext struct {
	Query     string `json:"query"`
	Category  string `json:"category,omitempty"`
	Location  string `json:"location,omitempty"`
	EventType string `json:"eventType,omitempty"`
}

// FilterSchema is the filter panel assembled for one search context.
type FilterSchema struct {
	Universal       []Filter        `json:"universal"`
	Specific        []Filter        `json:"specific"`
	Context         []Filter        `json:"context,omitempty"`
	Hierarchy       []HierarchyNode `json:"hierarchy"`
	DetectedService string          `json:"detectedService,omitempty"`
}

// FindFilter looks a filter up by id across every section of the schema.
func (s FilterSchema) FindFilter(id string) (Filter, bool) {
	for _, group := range [][]Filter{s.Universal, s.Specific, s.Context} {
		for _, f := range group {
			if f.ID == id {
				return f, true
			}
		}
	}
	for _, node := range s.Hierarchy {
		for _, f := range node.Children {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Filter{}, false
}
