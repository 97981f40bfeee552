package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/microcosm-cc/bluemonday"
)

// FairService reads and updates fair metadata. Editing is restricted to the
// fair's judge.
type FairService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sanitizer   *bluemonday.Policy
}

func NewFairService(db *sql.DB, m repomanager.RepositoryManager) *FairService {
	return &FairService{db: db, repomanager: m, sanitizer: bluemonday.UGCPolicy()}
}

func (s *FairService) Get(ctx context.Context, fairID string) (*models.Fair, error) {
	return s.repomanager.Fairs(s.db).GetByID(ctx, fairID)
}

// Update applies judge edits to a fair. Only the judge recorded on the fair
// may update it; JudgeID and CreatedAt are never changed.
func (s *FairService) Update(ctx context.Context, userID string, fair *models.Fair) (*models.Fair, error) {
	repo := s.repomanager.Fairs(s.db)

	current, err := repo.GetByID(ctx, fair.ID)
	if err != nil {
		return nil, err
	}
	if current.JudgeID != userID {
		return nil, common.ErrorUnauthorized
	}
	if fair.Title == "" {
		return nil, common.ErrorValidation
	}

	fair.About = s.sanitizer.Sanitize(fair.About)
	fair.JudgeID = current.JudgeID
	fair.CreatedAt = current.CreatedAt

	if err := repo.Update(ctx, fair); err != nil {
		return nil, err
	}
	return fair, nil
}
