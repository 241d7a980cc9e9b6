package state

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/roster/internal/directory"
)

// NormalizeTerm trims and case-folds a search term. An empty result means
// "no filter".
func NormalizeTerm(term string) string {
	return cases.Fold().String(strings.TrimSpace(term))
}

// Filter returns the users whose first or last name contains term,
// ignoring case. Order is preserved. A blank term returns users itself.
// When nothing matches the result is empty but not nil.
func Filter(users []directory.User, term string) []directory.User {
	needle := NormalizeTerm(term)
	if needle == "" {
		return users
	}
	fold := cases.Fold()
	out := make([]directory.User, 0)
	for _, u := range users {
		if strings.Contains(fold.String(u.FirstName), needle) ||
			strings.Contains(fold.String(u.LastName), needle) {
			out = append(out, u)
		}
	}
	return out
}
