package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/service"
)

// recentIDsKeep - сколько последних идентификаторов каждого вида хранится в бд
const recentIDsKeep = 10

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) service.SessionRepository {
	return &SessionRepository{db: db}
}

// LoadSession возвращает сохраненную сессию или nil, если её нет
func (r *SessionRepository) LoadSession(ctx context.Context, sessionID string) (*models.SessionState, error) {
	query := `
		SELECT session_id, patrol_group, book_on, officer, updated_at
		FROM cad_sessions
		WHERE session_id = $1;
	`
	state := &models.SessionState{}
	var bookOn, officer []byte
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&state.SessionID,
		&state.PatrolGroup,
		&bookOn,
		&officer,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if len(bookOn) > 0 {
		state.BookOn = &models.BookOnRequest{}
		if err := json.Unmarshal(bookOn, state.BookOn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal book on: %w", err)
		}
	}
	if len(officer) > 0 {
		state.Officer = &models.Officer{}
		if err := json.Unmarshal(officer, state.Officer); err != nil {
			return nil, fmt.Errorf("failed to unmarshal officer: %w", err)
		}
	}
	return state, nil
}

// SaveSession создает или перезаписывает сессию
func (r *SessionRepository) SaveSession(ctx context.Context, state *models.SessionState) error {
	bookOn, err := marshalNullable(state.BookOn)
	if err != nil {
		return fmt.Errorf("failed to marshal book on: %w", err)
	}
	officer, err := marshalNullable(state.Officer)
	if err != nil {
		return fmt.Errorf("failed to marshal officer: %w", err)
	}

	query := `
		INSERT INTO cad_sessions (session_id, patrol_group, book_on, officer, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE SET
			patrol_group = EXCLUDED.patrol_group,
			book_on = EXCLUDED.book_on,
			officer = EXCLUDED.officer,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, state.SessionID, state.PatrolGroup, bookOn, officer, state.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cad_sessions WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// AddRecentIDs отмечает идентификаторы как использованные и оставляет
// только последние recentIDsKeep. Первый идентификатор считается самым свежим.
func (r *SessionRepository) AddRecentIDs(ctx context.Context, kind string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(`
			INSERT INTO recent_ids (kind, value, used_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (kind, value) DO UPDATE SET used_at = EXCLUDED.used_at;
		`, kind, id, now.Add(-time.Duration(i)*time.Microsecond))
	}
	batch.Queue(`
		DELETE FROM recent_ids
		WHERE kind = $1 AND value NOT IN (
			SELECT value FROM recent_ids
			WHERE kind = $1
			ORDER BY used_at DESC
			LIMIT $2
		);
	`, kind, recentIDsKeep)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to record recent ids: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recent ids: %w", err)
	}
	return nil
}

// RecentIDs возвращает последние идентификаторы вида kind, самые свежие первыми
func (r *SessionRepository) RecentIDs(ctx context.Context, kind string, limit int) ([]string, error) {
	query := `
		SELECT value
		FROM recent_ids
		WHERE kind = $1
		ORDER BY used_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent ids: %w", err)
	}
	return ids, nil
}

// marshalNullable сериализует значение в JSON, nil превращается в NULL
func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
