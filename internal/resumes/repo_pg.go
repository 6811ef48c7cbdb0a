package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByUser returns the resume for a user, if any.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Resume, bool, error) {
	const query = `
SELECT id, user_id, content, filename, file_url, created_at, updated_at
FROM resumes
WHERE user_id = $1`

	var res Resume
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&res.ID,
		&res.UserID,
		&res.Content,
		&res.Filename,
		&res.FileURL,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, false, nil
		}
		return Resume{}, false, err
	}
	return res, true, nil
}

// Upsert inserts a resume or, when the user already has one, overwrites its
// content, filename, file_url and updated_at while preserving id and
// created_at. The unique constraint on user_id makes this atomic.
func (r *PGRepo) Upsert(ctx context.Context, res Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (id, user_id, content, filename, file_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    content    = EXCLUDED.content,
    filename   = EXCLUDED.filename,
    file_url   = EXCLUDED.file_url,
    updated_at = EXCLUDED.updated_at
RETURNING id, user_id, content, filename, file_url, created_at, updated_at`

	var out Resume
	err := r.DB.QueryRowContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		res.Content,
		res.Filename,
		res.FileURL,
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.Content,
		&out.Filename,
		&out.FileURL,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	return out, nil
}

// DeleteByUser removes the resume record for a user. Deleting an absent
// record is a no-op.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
