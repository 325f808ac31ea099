package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/service"
)

type ManifestRepository struct {
	db *pgxpool.Pool
}

func NewManifestRepository(db *pgxpool.Pool) service.ManifestRepository {
	return &ManifestRepository{db: db}
}

// SaveManifest сохраняет полученные записи справочника и время проверки
// одной транзакцией
func (r *ManifestRepository) SaveManifest(ctx context.Context, entries []models.ManifestEntry, checkedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(`
			INSERT INTO manifest_entries (collection, id, title, value, active, sort_order, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (collection, id) DO UPDATE SET
				title = EXCLUDED.title,
				value = EXCLUDED.value,
				active = EXCLUDED.active,
				sort_order = EXCLUDED.sort_order,
				last_updated = EXCLUDED.last_updated;
		`,
			entry.Collection,
			entry.ID,
			entry.Title,
			entry.Value,
			entry.Active,
			entry.SortOrder,
			entry.LastUpdated,
		)
	}
	batch.Queue(`
		INSERT INTO manifest_sync (id, checked_at)
		VALUES (TRUE, $1)
		ON CONFLICT (id) DO UPDATE SET checked_at = EXCLUDED.checked_at;
	`, checkedAt)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save manifest entries: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit manifest: %w", err)
	}
	return nil
}

// Entries возвращает записи коллекции в порядке отображения
func (r *ManifestRepository) Entries(ctx context.Context, collection string, activeOnly bool) ([]models.ManifestEntry, error) {
	query := `
		SELECT id, collection, title, value, active, sort_order, last_updated
		FROM manifest_entries
		WHERE collection = $1 AND (NOT $2 OR active)
		ORDER BY sort_order, title;
	`
	rows, err := r.db.Query(ctx, query, collection, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifest entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.ManifestEntry, 0)
	for rows.Next() {
		var entry models.ManifestEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Collection,
			&entry.Title,
			&entry.Value,
			&entry.Active,
			&entry.SortOrder,
			&entry.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manifest entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error manifest iteration: %w", err)
	}
	return entries, nil
}

// LastUpdate возвращает время последней проверки справочника или nil
func (r *ManifestRepository) LastUpdate(ctx context.Context) (*time.Time, error) {
	var checkedAt time.Time
	err := r.db.QueryRow(ctx, `SELECT checked_at FROM manifest_sync WHERE id;`).Scan(&checkedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get manifest last update: %w", err)
	}
	return &checkedAt, nil
}
