package repository

import (
	"context"
	"database/sql"
	"time"

	soleus "soleus_remote"

	"github.com/google/uuid"
)

type CaptureSQLite struct {
	db *sql.DB
}

func NewCaptureSQLite(db *sql.DB) *CaptureSQLite { return &CaptureSQLite{db: db} }

var _ CaptureRepo = (*CaptureSQLite)(nil)

const (
	insertCaptureSQL = `
		INSERT INTO captured_buttons (id, captured_at, button_name, pronto_data, matches)
		VALUES (?, ?, ?, ?, ?)
	`

	selectCapturesSQL = `
		SELECT id, captured_at, button_name, pronto_data, matches
		FROM captured_buttons ORDER BY captured_at ASC
	`

	// SQLite TIMESTAMP format
	sqliteTimeLayout = "2006-01-02 15:04:05"
)

// Append inserts a new captured button. If ID or CapturedAt are empty,
// they're set.
func (r *CaptureSQLite) Append(ctx context.Context, b soleus.CapturedButton) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CapturedAt.IsZero() {
		b.CapturedAt = time.Now().UTC()
	} else {
		b.CapturedAt = b.CapturedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertCaptureSQL,
		b.ID,
		b.CapturedAt.Format(sqliteTimeLayout),
		b.ButtonName,
		b.ProntoData,
		b.Matches,
	)
	return err
}

// List returns all captured buttons, oldest first.
func (r *CaptureSQLite) List(ctx context.Context) ([]soleus.CapturedButton, error) {
	rows, err := r.db.QueryContext(ctx, selectCapturesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]soleus.CapturedButton, 0, 16)
	for rows.Next() {
		var b soleus.CapturedButton
		if err := rows.Scan(&b.ID, &b.CapturedAt, &b.ButtonName, &b.ProntoData, &b.Matches); err != nil {
			return nil, err
		}
		b.CapturedAt = b.CapturedAt.UTC()
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
