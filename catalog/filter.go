package catalog

import (
	"strings"

	"medivance-backend/models"
)

// Criteria selects a subset of the catalog. Empty Category, Type and Status behave like models.FilterAll.
type Criteria struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Status   string `form:"status"`
}

// Filter returns the products matching every criterion, in their original order.
// The input slice is never modified and the result is never nil.
func Filter(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Matches is the conjunction of the text, category, type and status predicates.
func Matches(p models.Product, c Criteria) bool {
	return MatchesText(p, c.Query) &&
		MatchesCategory(p, c.Category) &&
		MatchesType(p, c.Type) &&
		selectorMatches(c.Status, p.Status)
}

// MatchesText reports whether query is a case-insensitive substring of the name or the description.
func MatchesText(p models.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func MatchesCategory(p models.Product, category string) bool {
	return selectorMatches(category, p.Category)
}

func MatchesType(p models.Product, typ string) bool {
	return selectorMatches(typ, p.Type)
}

func selectorMatches(selector, value string) bool {
	return selector == "" || selector == models.FilterAll || selector == value
}
