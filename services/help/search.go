package help

import (
	"strings"
	"unicode"

	"servineo/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips combining marks, so "Calificación"
// and "calificacion" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Search matches query against every entry of every page in the guide.
// An empty query matches nothing.
func (g *Guide) Search(query string) []models.HelpSearchResult {
	q := Normalize(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []models.HelpSearchResult
	for _, cat := range g.categories {
		switch c := cat.Content.(type) {
		case models.DirectPage:
			results = appendMatches(results, q, cat, "", c.Page)
		case models.SubItemList:
			for _, it := range c.Items {
				results = appendMatches(results, q, cat, it.ID, it.Page)
			}
		}
	}
	return results
}

func appendMatches(results []models.HelpSearchResult, q string, cat models.HelpCategory, itemID string, page models.HelpPage) []models.HelpSearchResult {
	for _, entry := range page.Entries {
		if !entryMatches(entry, q) {
			continue
		}
		results = append(results, models.HelpSearchResult{
			CategoryKey:   cat.Key,
			CategoryTitle: cat.Title,
			ItemID:        itemID,
			PageID:        page.ID,
			PageTitle:     page.Title,
			ContextID:     page.ID + "-" + entry.ID,
			Entry:         entry,
		})
	}
	return results
}

func entryMatches(entry models.AccordionEntry, q string) bool {
	if strings.Contains(Normalize(entry.Title), q) || strings.Contains(Normalize(entry.Description), q) {
		return true
	}
	for _, b := range entry.Bullets {
		if strings.Contains(Normalize(b), q) {
			return true
		}
	}
	return false
}
