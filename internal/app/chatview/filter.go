package chatview

import (
	"strings"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
)

// FilterContacts keeps the contacts whose display name contains query,
// ignoring case. An empty query keeps everything.
func FilterContacts(contacts []domain.User, query string) []domain.User {
	q := strings.ToLower(query)
	out := make([]domain.User, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}
