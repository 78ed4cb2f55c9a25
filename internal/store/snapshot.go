package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"sift/internal/model"
)

// SaveSnapshot serializes the whole tree and writes it under SchemaKey.
// Callers treat failures as best-effort (log and move on); there is no retry
// and no user-visible error.
func (s Store) SaveSnapshot(ctx context.Context, root model.Box) error {
	b, err := json.Marshal(root)
	if err != nil {
		return err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots(k, json, updated_at_unixms) VALUES(?, ?, ?)`,
		SchemaKey, string(b), time.Now().UTC().UnixMilli())
	return err
}

// LoadSnapshot reads the tree stored under SchemaKey. ok=false means there
// is no usable state (missing key, or a snapshot that no longer decodes) and
// the caller should fall back to the hard-coded default tree.
func (s Store) LoadSnapshot(ctx context.Context) (model.Box, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Box{}, false, err
	}
	defer db.Close()

	var js string
	err = db.QueryRowContext(ctx, `SELECT json FROM snapshots WHERE k = ?`, SchemaKey).Scan(&js)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Box{}, false, nil
	}
	if err != nil {
		return model.Box{}, false, err
	}
	var root model.Box
	if err := json.Unmarshal([]byte(js), &root); err != nil {
		// Corrupted snapshot: treat as missing, caller resets to default.
		return model.Box{}, false, nil
	}
	return root, true, nil
}

// ClearSnapshot removes the persisted state under SchemaKey, so a subsequent
// load yields the default tree again. Used by Reset.
func (s Store) ClearSnapshot(ctx context.Context) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM snapshots WHERE k = ?`, SchemaKey)
	return err
}
