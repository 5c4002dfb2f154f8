package usecase

import "strings"

// normalizeEmail trims surrounding whitespace. Emails are matched exactly,
// without case folding: uniqueness is enforced byte-wise by the users table.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// normalizeTags replaces a nil slice with an empty one so the column is never
// written as NULL.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
