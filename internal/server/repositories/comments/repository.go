// Package comments declares the repository contract for submission comments.
package comments

import (
	"context"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

type Repository interface {
	// Create stores a new comment and returns it with the generated ID and
	// creation time filled in.
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// ListBySubmission returns a submission's comments, oldest first.
	ListBySubmission(ctx context.Context, submissionID string) ([]*models.Comment, error)

	// CountBySubmission returns the number of comments on one submission.
	CountBySubmission(ctx context.Context, submissionID string) (int, error)
}
