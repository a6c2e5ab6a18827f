// Package taxonomy loads the event-service catalogue and matches search text against it.
package taxonomy

import (
	_ "embed"
	"fmt"
	"os"

	"eventhub/models"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// Taxonomy is an immutable category → subcategory → service tree.
// Nodes handed out by its accessors must be treated as read-only.
type Taxonomy struct {
	roots []*models.TaxonomyNode
	// flat holds every node in depth-first declaration order.
	flat []*models.TaxonomyNode
	byID map[string]*models.TaxonomyNode
	// categoryOf maps any node id to its root category id.
	categoryOf map[string]string
}

type document struct {
	Categories []*models.TaxonomyNode `yaml:"categories"`
}

var levels = []string{models.NodeCategory, models.NodeSubcategory, models.NodeService}

// Load parses a YAML taxonomy document.
func Load(data []byte) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy has no categories")
	}

	t := &Taxonomy{
		roots:      doc.Categories,
		byID:       make(map[string]*models.TaxonomyNode),
		categoryOf: make(map[string]string),
	}
	for _, root := range doc.Categories {
		if err := t.index(root, 0, "", root.ID); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Taxonomy) index(node *models.TaxonomyNode, depth int, parentID, categoryID string) error {
	if depth >= len(levels) {
		return fmt.Errorf("taxonomy node %q is nested deeper than %d levels", node.ID, len(levels))
	}
	if node.ID == "" || node.Label == "" {
		return fmt.Errorf("taxonomy node under %q is missing id or label", parentID)
	}
	if _, dup := t.byID[node.ID]; dup {
		return fmt.Errorf("duplicate taxonomy id %q", node.ID)
	}
	node.Type = levels[depth]
	node.ParentID = parentID
	t.byID[node.ID] = node
	t.categoryOf[node.ID] = categoryID
	t.flat = append(t.flat, node)
	for _, child := range node.Children {
		if err := t.index(child, depth+1, node.ID, categoryID); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a taxonomy from disk.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := Load(defaultTaxonomy)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

// Categories returns the root nodes in declaration order.
func (t *Taxonomy) Categories() []*models.TaxonomyNode {
	return t.roots
}

// Node looks a node up by id.
func (t *Taxonomy) Node(id string) (*models.TaxonomyNode, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// Label returns the display label of id, or id itself when unknown.
func (t *Taxonomy) Label(id string) string {
	if n, ok := t.byID[id]; ok {
		return n.Label
	}
	return id
}

// CategoryOf returns the root category id of any node.
func (t *Taxonomy) CategoryOf(id string) (string, bool) {
	c, ok := t.categoryOf[id]
	return c, ok
}

// ServicesUnder lists the service nodes below categoryID in declaration order.
func (t *Taxonomy) ServicesUnder(categoryID string) []*models.TaxonomyNode {
	var out []*models.TaxonomyNode
	for _, n := range t.flat {
		if n.Type == models.NodeService && t.categoryOf[n.ID] == categoryID {
			out = append(out, n)
		}
	}
	return out
}

// Services lists every service node in declaration order.
func (t *Taxonomy) Services() []*models.TaxonomyNode {
	var out []*models.TaxonomyNode
	for _, n := range t.flat {
		if n.Type == models.NodeService {
			out = append(out, n)
		}
	}
	return out
}
