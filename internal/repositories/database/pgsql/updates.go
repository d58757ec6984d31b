package pgsql

import (
	"fmt"
	"strings"
	"time"
)

// patchField is one candidate assignment for a sparse update: the column(s)
// it writes and the value to bind, applied only when Set is true. Fields that
// write more than one column (the deadline also maintains the legacy end_date
// column) list every target explicitly rather than hiding the dual write in
// query text.
type patchField struct {
	Columns []string
	Value   any
	Set     bool
}

func col(name string, value any, set bool) patchField {
	return patchField{Columns: []string{name}, Value: value, Set: set}
}

func cols(names []string, value any, set bool) patchField {
	return patchField{Columns: names, Value: value, Set: set}
}

// buildUpdate assembles a parameterized UPDATE from the set fields, always
// stamping updated_at. Values are bound as parameters, never interpolated.
// Returns ok=false when no field is set (the caller decides whether that is
// a validation error or a no-op).
func buildUpdate(table, keyColumn, keyValue string, fields []patchField, now time.Time) (string, []any, bool) {
	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)

	n := 0
	for _, f := range fields {
		if !f.Set {
			continue
		}
		n++
		args = append(args, f.Value)
		for _, c := range f.Columns {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", c, len(args)))
		}
	}
	if n == 0 {
		return "", nil, false
	}

	args = append(args, now)
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, keyValue)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d AND deleted = FALSE",
		table, strings.Join(setClauses, ", "), keyColumn, len(args),
	)
	return query, args, true
}
