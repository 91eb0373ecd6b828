package models

// ActionButton is a call to action under a help entry. Exactly one of Href or Event is set.
type ActionButton struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Event string `json:"event,omitempty" yaml:"event,omitempty"`
	Type  string `json:"type" yaml:"type"` // primary | secondary
}

// AccordionEntry is one collapsible block of a help page.
type AccordionEntry struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Bullets     []string       `json:"bullets" yaml:"bullets"`
	Actions     []ActionButton `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// HelpPage is an ordered list of accordion entries.
type HelpPage struct {
	ID      string           `json:"id" yaml:"id"`
	Title   string           `json:"title" yaml:"title"`
	Entries []AccordionEntry `json:"accordions" yaml:"accordions"`
}

// HelpItem is a named sub-page of a category.
type HelpItem struct {
	ID    string   `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Page  HelpPage `json:"page" yaml:"page"`
}

// CategoryContent is either a DirectPage or a SubItemList.
type CategoryContent interface {
	isCategoryContent()
}

// DirectPage is a category that opens a page directly.
type DirectPage struct {
	Page HelpPage
}

// SubItemList is a category that expands into sub-pages.
type SubItemList struct {
	Items []HelpItem
}

func (DirectPage) isCategoryContent()  {}
func (SubItemList) isCategoryContent() {}

// HelpCategory is a top-level node of the help guide.
type HelpCategory struct {
	Key     string
	Title   string
	Icon    string
	Content CategoryContent
}

// HelpCategorySummary is the sidebar view of a category.
type HelpCategorySummary struct {
	Key      string          `json:"key"`
	Title    string          `json:"title"`
	Icon     string          `json:"icon,omitempty"`
	HasItems bool            `json:"hasItems"`
	Items    []HelpItemTitle `json:"items,omitempty"`
}

type HelpItemTitle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// HelpSearchResult is a matching entry with its breadcrumb.
type HelpSearchResult struct {
	CategoryKey   string         `json:"categoryKey"`
	CategoryTitle string         `json:"categoryTitle"`
	ItemID        string         `json:"itemId,omitempty"`
	PageID        string         `json:"pageId"`
	PageTitle     string         `json:"pageTitle"`
	ContextID     string         `json:"contextId"`
	Entry         AccordionEntry `json:"entry"`
}

// Breadcrumb renders "Category › Page".
func (r HelpSearchResult) Breadcrumb() string {
	return r.CategoryTitle + " › " + r.PageTitle
}
