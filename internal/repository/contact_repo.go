package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c4flow/studio-service/internal/models"
)

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// CreateSubmission stores a contact form entry. Re-inserting the same id is a
// no-op so retried requests do not duplicate rows.
func (r *ContactRepo) CreateSubmission(ctx context.Context, sub models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, message, read, client_ip, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Message,
		sub.Read,
		sub.ClientIP,
		sub.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
