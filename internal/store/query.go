package store

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseHistorySelect = `SELECT id, uploaded_at, file_name, total_rows, processed_rows, error_rows
FROM upload_history`

// HistoryQuery defines optional filters for upload history queries.
type HistoryQuery struct {
	Since    *time.Time
	FileName string // case-insensitive substring
	Limit    int    // default 50
	Offset   int
}

// ToSQL builds the history query and its positional parameters. A nil
// query uses the defaults. Entries are returned newest first.
func (q *HistoryQuery) ToSQL() (string, []any) {
	if q == nil {
		q = &HistoryQuery{}
	}

	var (
		conditions []string
		args       []any
	)
	paramIdx := 1

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("uploaded_at >= $%d", paramIdx))
		args = append(args, *q.Since)
		paramIdx++
	}

	if q.FileName != "" {
		conditions = append(conditions, fmt.Sprintf("file_name ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(q.FileName)+"%")
		paramIdx++
	}

	var sb strings.Builder
	sb.WriteString(baseHistorySelect)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY uploaded_at DESC, id")

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	fmt.Fprintf(&sb, " LIMIT $%d", paramIdx)
	args = append(args, limit)
	paramIdx++

	if q.Offset > 0 {
		fmt.Fprintf(&sb, " OFFSET $%d", paramIdx)
		args = append(args, q.Offset)
	}

	return sb.String(), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
