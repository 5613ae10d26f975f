package postgres

import (
	"fmt"
	"strings"
)

// placeholders renders "$start, $start+1, ..." for n arguments, for building
// IN (...) lists with positional parameters.
func placeholders(n, start int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("$%d", start+i))
	}
	return strings.Join(parts, ", ")
}

// int64Args widens a slice of ids into []any for variadic query arguments.
func int64Args(ids []int64) []any {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}
