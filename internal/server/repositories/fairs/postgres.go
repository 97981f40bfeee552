package fairs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

// PostgresRepository implements fair storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns one fair record.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Fair, error) {
	query := `
		SELECT id, judge_id, title, subtitle, about, deadline, requirements, prices, judging_criteria, image_url, created_at
		FROM fairs
		WHERE id = $1
	`
	fair := &models.Fair{}
	var deadline sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&fair.ID, &fair.JudgeID, &fair.Title, &fair.Subtitle, &fair.About, &deadline,
			&fair.Requirements, &fair.Prices, &fair.JudgingCriteria, &fair.ImageURL, &fair.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if deadline.Valid {
		fair.Deadline = deadline.Time
	}
	return fair, nil
}

// Update rewrites the judge-editable metadata. Ownership is checked by the
// service; this only touches the row contents.
func (r *PostgresRepository) Update(ctx context.Context, fair *models.Fair) error {
	query := `
		UPDATE fairs
		SET title = $2, subtitle = $3, about = $4, deadline = $5,
		    requirements = $6, prices = $7, judging_criteria = $8, image_url = $9
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		fair.ID, fair.Title, fair.Subtitle, fair.About, fair.Deadline,
		fair.Requirements, fair.Prices, fair.JudgingCriteria, fair.ImageURL)
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
