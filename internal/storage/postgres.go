package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Load(ctx context.Context, name string, dst any) (bool, error) {
	const op = "storage.PostgresStore.Load"
	if name == "" {
		return false, fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	query := `
		SELECT data
		FROM store_snapshots
		WHERE name = $1
	`

	var raw []byte
	err := p.db.GetContext(ctx, &raw, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (p *PostgresStore) Save(ctx context.Context, name string, src any) error {
	const op = "storage.PostgresStore.Save"
	if name == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO store_snapshots (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET data = EXCLUDED.data,
		    updated_at = NOW()
	`

	if _, err := p.db.ExecContext(ctx, query, name, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
