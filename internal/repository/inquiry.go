package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contact-back/internal/apperrors"
	"contact-back/internal/model"
)

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
	}
}

// Begin hands the service a transaction it can thread through the
// insert and release with Commit or Rollback.
func (r *InquiryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *InquiryRepository) InsertInquiry(ctx context.Context, ext RepoExtension, inquiry *model.Inquiry) error {
	if ext == nil {
		ext = r.db
	}

	const query = `
		INSERT INTO inquiries (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, status, is_read, created_at, updated_at;
	`

	err := ext.QueryRow(ctx, query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
	).Scan(
		&inquiry.ID,
		&inquiry.Status,
		&inquiry.IsRead,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	return nil
}

func (r *InquiryRepository) SelectInquiries(ctx context.Context, ext RepoExtension) ([]model.Inquiry, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		SELECT id, name, email, message, status, is_read, created_at, updated_at
		FROM inquiries
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := ext.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select inquiries: %w", err)
	}

	defer rows.Close()

	inquiries := make([]model.Inquiry, 0)

	for rows.Next() {
		var inq model.Inquiry

		if err := rows.Scan(
			&inq.ID,
			&inq.Name,
			&inq.Email,
			&inq.Message,
			&inq.Status,
			&inq.IsRead,
			&inq.CreatedAt,
			&inq.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}

		inquiries = append(inquiries, inq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *InquiryRepository) UpdateInquiryStatus(ctx context.Context, ext RepoExtension, id int64, status string) (*model.Inquiry, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		UPDATE inquiries
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, name, email, message, status, is_read, created_at, updated_at;
	`

	var inq model.Inquiry

	err := ext.QueryRow(ctx, query, status, id).Scan(
		&inq.ID,
		&inq.Name,
		&inq.Email,
		&inq.Message,
		&inq.Status,
		&inq.IsRead,
		&inq.CreatedAt,
		&inq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}

		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	return &inq, nil
}
