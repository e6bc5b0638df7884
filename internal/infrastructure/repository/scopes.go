package repository

import "strings"

// buildOrderClause maps a requested sort field to a whitelisted column
// and normalizes direction. Unknown fields fall back to the default so
// request input never reaches the ORDER BY clause raw.
func buildOrderClause(sortBy, sortOrder string, allowed map[string]string, fallback string) string {
	column, ok := allowed[sortBy]
	if !ok {
		return fallback
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}
