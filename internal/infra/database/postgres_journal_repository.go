// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"
)

const journalSchema = `CREATE TABLE IF NOT EXISTS notification_journal (
    id         BIGSERIAL PRIMARY KEY,
    chat_id    BIGINT      NOT NULL,
    text       TEXT        NOT NULL,
    delivered  BOOLEAN     NOT NULL,
    error      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, journalSchema); err != nil {
		return fmt.Errorf("error creating notification_journal table: %w", err)
	}
	return nil
}

func (r *PostgresJournalRepository) Append(ctx context.Context, entry *notification.Entry) error {
	query := `INSERT INTO notification_journal (chat_id, text, delivered, error)
               VALUES ($1, $2, $3, $4)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, entry.ChatID, entry.Text, entry.Delivered, entry.Error).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error appending notification journal entry: %w", err)
	}
	return nil
}
