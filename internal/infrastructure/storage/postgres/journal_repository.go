package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/journal"
)

type JournalRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewJournalRepository(pool *pgxpool.Pool, log *slog.Logger) *JournalRepository {
	return &JournalRepository{pool: pool, log: log.With("component", "journal_repository")}
}

func (r *JournalRepository) Create(ctx context.Context, e *journal.Entry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO journal_entries (user_id, title, content, image_url)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		e.UserID, e.Title, e.Content, e.ImageURL,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) List(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, content, image_url, created_at FROM journal_entries
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (journal.Entry, error) {
		var e journal.Entry
		err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.ImageURL, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal entries: %w", err)
	}
	return nonNil(entries), nil
}

func (r *JournalRepository) Update(ctx context.Context, e *journal.Entry) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE journal_entries SET title = $1, content = $2, image_url = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING created_at`,
		e.Title, e.Content, e.ImageURL, e.ID, e.UserID,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return journal.ErrNotFound
		}
		return fmt.Errorf("update journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.pool, "journal_entries", userID, id, journal.ErrNotFound)
}
