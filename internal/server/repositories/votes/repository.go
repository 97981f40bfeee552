// Package votes declares the repository contract for submission votes.
package votes

import (
	"context"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

// Counts is the aggregated vote tally for one submission.
type Counts struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

type Repository interface {
	// Cast records a user's vote on a submission. A repeated vote by the
	// same user replaces the previous one.
	Cast(ctx context.Context, vote *models.Vote) error

	// CountBySubmission returns the vote tally for one submission.
	CountBySubmission(ctx context.Context, submissionID string) (Counts, error)
}
