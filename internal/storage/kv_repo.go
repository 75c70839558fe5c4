package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// KVRepo is the raw key-value repository. It reports real errors; callers that
// need failure containment go through Store instead.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the stored value, or ok=false if the key was never set.
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return v, true, nil
}

func (r *KVRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}

// PutMany upserts all pairs in one transaction, so readers never observe a
// partial write across related keys.
func (r *KVRepo) PutMany(ctx context.Context, pairs map[string]string) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for key, value := range pairs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
			`, key, value)
			if err != nil {
				return fmt.Errorf("kv put %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
