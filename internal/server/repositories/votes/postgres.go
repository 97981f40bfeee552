package votes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Cast upserts the vote, keyed by (submission_id, user_id).
func (r *PostgresRepository) Cast(ctx context.Context, vote *models.Vote) error {
	query := `
		INSERT INTO votes (submission_id, user_id, vote_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (submission_id, user_id) DO UPDATE SET vote_type = EXCLUDED.vote_type
	`
	_, err := r.db.ExecContext(ctx, query, vote.SubmissionID, vote.UserID, vote.VoteType)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountBySubmission(ctx context.Context, submissionID string) (Counts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE vote_type = $2),
			COUNT(*) FILTER (WHERE vote_type = $3)
		FROM votes
		WHERE submission_id = $1
	`
	var c Counts
	err := r.db.QueryRowContext(ctx, query, submissionID, models.VoteUp, models.VoteDown).
		Scan(&c.Up, &c.Down)
	if err != nil {
		return Counts{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}
