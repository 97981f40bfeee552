package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/microcosm-cc/bluemonday"
)

// CommunityService covers the engagement features around a submission:
// voting and flat comments.
type CommunityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sanitizer   *bluemonday.Policy
}

func NewCommunityService(db *sql.DB, m repomanager.RepositoryManager) *CommunityService {
	return &CommunityService{db: db, repomanager: m, sanitizer: bluemonday.StrictPolicy()}
}

// Vote records a user's vote on a submission. A second vote by the same user
// replaces the first. The submission must exist.
func (s *CommunityService) Vote(ctx context.Context, userID, submissionID, voteType string) error {
	if voteType != models.VoteUp && voteType != models.VoteDown {
		return common.ErrorValidation
	}
	if _, err := s.repomanager.Submissions(s.db).GetByID(ctx, submissionID); err != nil {
		return err
	}
	return s.repomanager.Votes(s.db).Cast(ctx, &models.Vote{
		SubmissionID: submissionID,
		UserID:       userID,
		VoteType:     voteType,
	})
}

// Comment adds one comment to a submission. Markup is stripped from the body.
func (s *CommunityService) Comment(ctx context.Context, userID, submissionID, body string) (*models.Comment, error) {
	body = strings.TrimSpace(s.sanitizer.Sanitize(body))
	if body == "" {
		return nil, common.ErrorValidation
	}
	if _, err := s.repomanager.Submissions(s.db).GetByID(ctx, submissionID); err != nil {
		return nil, err
	}
	return s.repomanager.Comments(s.db).Create(ctx, &models.Comment{
		SubmissionID: submissionID,
		UserID:       userID,
		Body:         body,
	})
}

// Comments lists a submission's comments, oldest first.
func (s *CommunityService) Comments(ctx context.Context, submissionID string) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).ListBySubmission(ctx, submissionID)
}
