// Package submissions declares the repository contract for fair submissions
// and their ordered image references.
package submissions

import (
	"context"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

type Repository interface {
	// Create inserts the submission row and one image row per storage key,
	// preserving key order. It enforces the image-count cap and returns the
	// submission with the generated ID. Run inside a transaction so the
	// record becomes visible all at once.
	Create(ctx context.Context, s *models.Submission) (*models.Submission, error)

	// GetByID returns one submission with its image keys in stored order.
	// Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Submission, error)

	// ListByFair returns all submissions for a fair, newest first (ties
	// broken by id, descending), each with image keys in stored order.
	ListByFair(ctx context.Context, fairID string) ([]*models.Submission, error)

	// Delete removes a submission (image rows cascade). Returns
	// common.ErrorNotFound when no row was deleted.
	Delete(ctx context.Context, id string) error
}
