package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"diary_gateway/internal/models"

	"github.com/google/uuid"
)

// timestamps are stored as UTC text in this layout so range filters compare lexically
const timestampLayout = "2006-01-02 15:04:05"

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

const insertActivitySQL = `
		INSERT INTO gateway_activity (id, occurred_at, username, type, message, request_id, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ ActivityRepo = (*ActivitySQLite)(nil)

// Append inserts an entry, filling EventID and OccurredAt when empty.
func (r *ActivitySQLite) Append(ctx context.Context, a models.Activity) error {
	if a.EventID == "" {
		a.EventID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}

	var metaPtr *string
	if a.Metadata != nil {
		if b, err := json.Marshal(a.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.EventID,
		a.OccurredAt.UTC().Format(timestampLayout),
		a.Username,
		strings.ToUpper(strings.TrimSpace(a.Type)),
		a.Description,
		a.RequestID,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert activity %s: %w", a.EventID, err)
	}
	return nil
}

// List returns the newest entries first.
func (r *ActivitySQLite) List(ctx context.Context, q ActivityQuery) ([]models.Activity, error) {
	conds := []string{"username = ?"}
	args := []any{q.Username}

	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, q.From.UTC().Format(timestampLayout))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, q.To.UTC().Format(timestampLayout))
	}
	if typ := strings.ToUpper(strings.TrimSpace(q.Type)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	args = append(args, limit)

	query := `SELECT id, occurred_at, username, type, message, request_id, meta FROM gateway_activity` +
		" WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY occurred_at DESC LIMIT ?"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity for %q: %w", q.Username, err)
	}
	defer rows.Close()

	out := make([]models.Activity, 0, 16)
	for rows.Next() {
		var (
			a         models.Activity
			occurred  string
			requestID sql.NullString
			metaStr   sql.NullString
		)
		if err := rows.Scan(&a.EventID, &occurred, &a.Username, &a.Type, &a.Description, &requestID, &metaStr); err != nil {
			return nil, err
		}
		ts, err := time.Parse(timestampLayout, occurred)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at of %s: %w", a.EventID, err)
		}
		a.OccurredAt = ts.UTC()
		a.RequestID = requestID.String

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				a.Metadata = v
			} else {
				a.Metadata = metaStr.String
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
