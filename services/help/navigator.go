package help

import (
	"servineo/models"
)

const DefaultCategory = "inicio"

// NavigatorView is what the help page renders.
type NavigatorView struct {
	ActiveCategory string                    `json:"activeCategory"`
	ActiveItemID   string                    `json:"activeItemId,omitempty"`
	Expanded       []string                  `json:"expanded"`
	Page           *models.HelpPage          `json:"page,omitempty"`
	Query          string                    `json:"query,omitempty"`
	Results        []models.HelpSearchResult `json:"results,omitempty"`
	OpenEntry      string                    `json:"openEntry,omitempty"`
}

// Navigator is one reader's position in the guide.
type Navigator struct {
	guide     *Guide
	category  string
	itemID    string
	expanded  []string
	query     string
	results   []models.HelpSearchResult
	openEntry string
}

func NewNavigator(guide *Guide) *Navigator {
	return &Navigator{guide: guide, category: DefaultCategory}
}

// SelectCategory folds or unfolds a folder category, or opens a direct page.
func (n *Navigator) SelectCategory(key string) error {
	cat, err := n.guide.Category(key)
	if err != nil {
		return err
	}
	n.category = key
	if _, ok := cat.Content.(models.SubItemList); ok {
		n.toggle(key)
		return nil
	}
	n.itemID = ""
	n.clearSearch()
	return nil
}

// SelectSubItem opens a folder's sub-page and keeps the folder unfolded.
func (n *Navigator) SelectSubItem(key, itemID string) error {
	if _, err := n.guide.Item(key, itemID); err != nil {
		return err
	}
	n.category = key
	n.itemID = itemID
	n.clearSearch()
	if !n.isExpanded(key) {
		n.expanded = append(n.expanded, key)
	}
	return nil
}

// Search runs query across the whole guide and opens the first match.
func (n *Navigator) Search(query string) []models.HelpSearchResult {
	n.query = query
	n.results = n.guide.Search(query)
	n.openEntry = ""
	if len(n.results) > 0 {
		n.openEntry = n.results[0].ContextID
	}
	return n.results
}

// ToggleEntry opens an accordion entry, or closes it if already open.
func (n *Navigator) ToggleEntry(contextID string) {
	if n.openEntry == contextID {
		n.openEntry = ""
		return
	}
	n.openEntry = contextID
}

func (n *Navigator) View() NavigatorView {
	v := NavigatorView{
		ActiveCategory: n.category,
		ActiveItemID:   n.itemID,
		Expanded:       append([]string{}, n.expanded...),
		Query:          n.query,
		Results:        n.results,
		OpenEntry:      n.openEntry,
	}
	if n.query == "" {
		if cat, err := n.guide.Category(n.category); err == nil {
			v.Page = pageOf(cat, n.itemID)
		}
	}
	return v
}

func (n *Navigator) clearSearch() {
	n.query = ""
	n.results = nil
	n.openEntry = ""
}

func (n *Navigator) isExpanded(key string) bool {
	for _, k := range n.expanded {
		if k == key {
			return true
		}
	}
	return false
}

func (n *Navigator) toggle(key string) {
	for i, k := range n.expanded {
		if k == key {
			n.expanded = append(n.expanded[:i], n.expanded[i+1:]...)
			return
		}
	}
	n.expanded = append(n.expanded, key)
}
