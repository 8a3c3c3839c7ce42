package query

import (
	"strings"

	"game-marketplace/internal/model"

	"golang.org/x/text/cases"
)

func FilterUsersByRole(users []model.User, role model.Role) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// SearchUsers matches q case-insensitively against display name, email and id.
func SearchUsers(users []model.User, q string) []model.User {
	q = strings.TrimSpace(q)
	if q == "" {
		return model.CloneUsers(users)
	}

	fold := cases.Fold()
	needle := fold.String(q)

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		for _, field := range []string{u.DisplayName, u.Email, u.ID} {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, u)
				break
			}
		}
	}
	return out
}
