package submissions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

// PostgresRepository implements submission storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the submission and its image references. The image-count
// cap is re-checked here because this is the commit point: a record must
// never be written with common.MaxSubmissionImages or more images.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Submission) (*models.Submission, error) {
	if len(s.ImageKeys) >= common.MaxSubmissionImages {
		return nil, fmt.Errorf("%w: up to %d media files per submission", common.ErrorValidation, common.MaxSubmissionImages)
	}

	query := `
		INSERT INTO submissions (title, email, about, image_url, format, user_id, fair_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		s.Title, s.Email, s.About, s.ImageURL, s.Format, s.UserID, s.FairID).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	imageQuery := `
		INSERT INTO submission_images (submission_id, position, storage_key)
		VALUES ($1, $2, $3)
	`
	for i, key := range s.ImageKeys {
		if _, err := r.db.ExecContext(ctx, imageQuery, s.ID, i, key); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	return s, nil
}

const selectColumns = `s.id, s.title, s.email, s.about, s.image_url, s.format, s.user_id, s.fair_id, s.created_at, i.storage_key`

// GetByID returns one submission with image keys in position order.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM submissions s
		LEFT JOIN submission_images i ON i.submission_id = s.id
		WHERE s.id = $1
		ORDER BY i.position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items, err := foldRows(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, common.ErrorNotFound
	}
	return items[0], nil
}

// ListByFair returns all of a fair's submissions, newest first.
func (r *PostgresRepository) ListByFair(ctx context.Context, fairID string) ([]*models.Submission, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM submissions s
		LEFT JOIN submission_images i ON i.submission_id = s.id
		WHERE s.fair_id = $1
		ORDER BY s.created_at DESC, s.id DESC, i.position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, fairID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return foldRows(rows)
}

// Delete removes the submission row; image rows cascade.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// foldRows collapses the submission x image join into one Submission per
// record, keys appended in scan order (the queries order by position).
func foldRows(rows *sql.Rows) ([]*models.Submission, error) {
	var result []*models.Submission
	byID := map[string]*models.Submission{}

	for rows.Next() {
		var item models.Submission
		var key sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Email, &item.About, &item.ImageURL,
			&item.Format, &item.UserID, &item.FairID, &item.CreatedAt, &key); err != nil {
			return nil, err
		}
		s, ok := byID[item.ID]
		if !ok {
			s = &item
			byID[item.ID] = s
			result = append(result, s)
		}
		if key.Valid {
			s.ImageKeys = append(s.ImageKeys, key.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
