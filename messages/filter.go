package messages

import (
	"strings"

	"medivance-backend/models"
)

// Criteria selects messages in the admin inbox. Empty or "all" selectors do not restrict.
type Criteria struct {
	Query       string `form:"q"`
	Status      string `form:"status"`
	Priority    string `form:"priority"`
	InquiryType string `form:"inquiryType"`
}

// Filter returns the messages matching c in input order. The result is never nil.
func Filter(messages []models.ContactMessage, c Criteria) []models.ContactMessage {
	query := strings.ToLower(c.Query)
	out := make([]models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		if matchesText(m, query) &&
			selected(c.Status, m.Status) &&
			selected(c.Priority, m.Priority) &&
			selected(c.InquiryType, m.InquiryType) {
			out = append(out, m)
		}
	}
	return out
}

// matchesText reports whether the lowercased query occurs in name, email or subject.
func matchesText(m models.ContactMessage, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), query) ||
		strings.Contains(strings.ToLower(m.Email), query) ||
		strings.Contains(strings.ToLower(m.Subject), query)
}

func selected(want, got string) bool {
	return want == "" || want == models.FilterAll || want == got
}
