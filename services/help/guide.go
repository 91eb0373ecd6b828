// Package help serves the static help guide and searches it.
package help

import (
	_ "embed"
	"errors"
	"fmt"

	"servineo/models"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var (
	ErrUnknownCategory = errors.New("unknown help category")
	ErrUnknownItem     = errors.New("unknown help item")
	ErrNotAFolder      = errors.New("help category has no sub-items")
)

type rawCategory struct {
	Key   string            `yaml:"key"`
	Title string            `yaml:"title"`
	Icon  string            `yaml:"icon"`
	Page  *models.HelpPage  `yaml:"page"`
	Items []models.HelpItem `yaml:"items"`
}

type rawGuide struct {
	Categories []rawCategory `yaml:"categories"`
}

// Guide is the read-only help tree, in sidebar order.
type Guide struct {
	categories []models.HelpCategory
	byKey      map[string]int
}

// Load parses a YAML help document. Every category must have either a page
// or a list of items, never both.
func Load(data []byte) (*Guide, error) {
	var raw rawGuide
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse help content: %w", err)
	}

	g := &Guide{byKey: make(map[string]int, len(raw.Categories))}
	for _, rc := range raw.Categories {
		if rc.Key == "" {
			return nil, fmt.Errorf("help category %q has no key", rc.Title)
		}
		if _, dup := g.byKey[rc.Key]; dup {
			return nil, fmt.Errorf("duplicate help category %q", rc.Key)
		}

		cat := models.HelpCategory{Key: rc.Key, Title: rc.Title, Icon: rc.Icon}
		switch {
		case rc.Page != nil && len(rc.Items) > 0:
			return nil, fmt.Errorf("help category %q has both a page and items", rc.Key)
		case rc.Page != nil:
			cat.Content = models.DirectPage{Page: *rc.Page}
		case len(rc.Items) > 0:
			cat.Content = models.SubItemList{Items: rc.Items}
		default:
			return nil, fmt.Errorf("help category %q has no content", rc.Key)
		}

		g.byKey[rc.Key] = len(g.categories)
		g.categories = append(g.categories, cat)
	}
	return g, nil
}

// Default loads the built-in guide.
func Default() (*Guide, error) {
	return Load(defaultContent)
}

func (g *Guide) Categories() []models.HelpCategory {
	return g.categories
}

func (g *Guide) Category(key string) (models.HelpCategory, error) {
	i, ok := g.byKey[key]
	if !ok {
		return models.HelpCategory{}, fmt.Errorf("%w: %s", ErrUnknownCategory, key)
	}
	return g.categories[i], nil
}

// Item finds a sub-page of a folder category.
func (g *Guide) Item(key, itemID string) (models.HelpItem, error) {
	cat, err := g.Category(key)
	if err != nil {
		return models.HelpItem{}, err
	}
	list, ok := cat.Content.(models.SubItemList)
	if !ok {
		return models.HelpItem{}, fmt.Errorf("%w: %s", ErrNotAFolder, key)
	}
	for _, it := range list.Items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return models.HelpItem{}, fmt.Errorf("%w: %s/%s", ErrUnknownItem, key, itemID)
}

// Summaries is the sidebar listing.
func (g *Guide) Summaries() []models.HelpCategorySummary {
	out := make([]models.HelpCategorySummary, 0, len(g.categories))
	for _, cat := range g.categories {
		s := models.HelpCategorySummary{Key: cat.Key, Title: cat.Title, Icon: cat.Icon}
		if list, ok := cat.Content.(models.SubItemList); ok {
			s.HasItems = true
			for _, it := range list.Items {
				s.Items = append(s.Items, models.HelpItemTitle{ID: it.ID, Title: it.Title})
			}
		}
		out = append(out, s)
	}
	return out
}

// pageOf is the page a category shows when opened without a specific item.
func pageOf(cat models.HelpCategory, itemID string) *models.HelpPage {
	switch c := cat.Content.(type) {
	case models.DirectPage:
		p := c.Page
		return &p
	case models.SubItemList:
		for _, it := range c.Items {
			if it.ID == itemID {
				p := it.Page
				return &p
			}
		}
		if len(c.Items) > 0 {
			p := c.Items[0].Page
			return &p
		}
	}
	return nil
}
