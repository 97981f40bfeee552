package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/server/blob"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/votes"
	"golang.org/x/sync/errgroup"
)

// SubmissionView is a submission augmented for display: resolved image URLs
// in stored order, the creator (nil if the account was deleted), and vote and
// comment tallies.
type SubmissionView struct {
	Submission   *models.Submission `json:"submission"`
	ImageURLs    []string           `json:"image_urls"`
	Creator      *models.User       `json:"creator,omitempty"`
	Votes        votes.Counts       `json:"votes"`
	CommentCount int                `json:"comment_count"`
}

// ListingService assembles read views of submissions. Resolution is a strict
// join: if any referenced object cannot be resolved to a URL, the whole call
// fails rather than returning a partial view.
type ListingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blob.Store
}

func NewListingService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store) *ListingService {
	return &ListingService{db: db, repomanager: m, store: store}
}

// List returns all submissions for a fair, newest first, each fully resolved.
func (s *ListingService) List(ctx context.Context, fairID string) ([]*SubmissionView, error) {
	repo := s.repomanager.Submissions(s.db)

	records, err := repo.ListByFair(ctx, fairID)
	if err != nil {
		return nil, err
	}

	views := make([]*SubmissionView, len(records))

	g, gctx := errgroup.WithContext(ctx)
	for i, record := range records {
		g.Go(func() error {
			view, err := s.resolve(gctx, record)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}

// Get returns one fully resolved submission.
func (s *ListingService) Get(ctx context.Context, submissionID string) (*SubmissionView, error) {
	repo := s.repomanager.Submissions(s.db)

	record, err := repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, record)
}

// resolve fans out the per-submission lookups: one URL per image key, the
// creator record, and the vote and comment counters.
func (s *ListingService) resolve(ctx context.Context, record *models.Submission) (*SubmissionView, error) {
	view := &SubmissionView{
		Submission: record,
		ImageURLs:  make([]string, len(record.ImageKeys)),
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, key := range record.ImageKeys {
		g.Go(func() error {
			url, err := s.store.ResolveURL(gctx, key)
			if err != nil {
				return err
			}
			view.ImageURLs[i] = url
			return nil
		})
	}

	g.Go(func() error {
		user, err := s.repomanager.Users(s.db).GetByID(gctx, record.UserID)
		if err != nil {
			// A deleted account is not an error; the view just has no creator.
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}
		view.Creator = user
		return nil
	})

	g.Go(func() error {
		counts, err := s.repomanager.Votes(s.db).CountBySubmission(gctx, record.ID)
		if err != nil {
			return err
		}
		view.Votes = counts
		return nil
	})

	g.Go(func() error {
		n, err := s.repomanager.Comments(s.db).CountBySubmission(gctx, record.ID)
		if err != nil {
			return err
		}
		view.CommentCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}
