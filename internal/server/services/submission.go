package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/filex"
	"github.com/dmitrijs2005/fairhub/internal/logging"
	"github.com/dmitrijs2005/fairhub/internal/netx"
	"github.com/dmitrijs2005/fairhub/internal/server/blob"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
)

// uploadToPresignedURL is a seam for testing the media push.
var uploadToPresignedURL = netx.UploadToPresignedURL

const (
	minTextFieldLen = 5
	maxTextFieldLen = 100
)

// IngestRequest is everything the pipeline needs to create one submission.
// Files carry the media in author-chosen order.
type IngestRequest struct {
	FairID   string
	Title    string
	Email    string
	About    string
	ImageURL string
	Files    []*filex.UploadFile
}

// SubmissionService implements the ingestion pipeline: it pushes every file
// to object storage, then makes the record visible with a single insert.
// Readers never observe a submission with only part of its media uploaded.
type SubmissionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blob.Store
	sanitizer   *bluemonday.Policy
	logger      logging.Logger
}

func NewSubmissionService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store, logger logging.Logger) *SubmissionService {
	return &SubmissionService{
		db:          db,
		repomanager: m,
		store:       store,
		sanitizer:   bluemonday.UGCPolicy(),
		logger:      logger,
	}
}

func validTextField(s string) bool {
	return len(s) >= minTextFieldLen && len(s) <= maxTextFieldLen
}

// Ingest validates the request, uploads all files concurrently, and commits
// the submission record. If any upload fails, already-stored objects are
// removed best-effort and no record is created.
func (s *SubmissionService) Ingest(ctx context.Context, userID string, req *IngestRequest) (*models.Submission, error) {
	if !validTextField(req.Title) || !validTextField(req.Email) {
		return nil, common.ErrorValidation
	}
	if len(req.Files) == 0 || len(req.Files) >= common.MaxSubmissionImages {
		return nil, common.ErrorValidation
	}
	if req.FairID == "" {
		return nil, common.ErrorValidation
	}

	keys, err := s.uploadAll(ctx, req.Files)
	if err != nil {
		return nil, err
	}

	submission := &models.Submission{
		Title:     req.Title,
		Email:     req.Email,
		About:     s.sanitizer.Sanitize(req.About),
		ImageURL:  req.ImageURL,
		Format:    "image",
		ImageKeys: keys,
		UserID:    userID,
		FairID:    req.FairID,
	}

	var created *models.Submission
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Submissions(tx)
		var txErr error
		created, txErr = repo.Create(ctx, submission)
		return txErr
	})
	if err != nil {
		s.cleanupOrphans(ctx, keys)
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating submission: %v", err)
	}

	return created, nil
}

// uploadAll pushes the files to object storage concurrently. The returned
// keys are index-paired with the input so stored order matches author order.
func (s *SubmissionService) uploadAll(ctx context.Context, files []*filex.UploadFile) ([]string, error) {
	keys := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			target, err := s.store.IssueUploadTarget(gctx)
			if err != nil {
				return err
			}
			keys[i] = target.Key
			return uploadToPresignedURL(gctx, target.URL, f.Data, f.ContentType)
		})
	}

	if err := g.Wait(); err != nil {
		s.cleanupOrphans(ctx, keys)
		return nil, fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}
	return keys, nil
}

// cleanupOrphans removes objects that will never be referenced by a record.
// Failures are logged and swallowed: a leaked object is invisible to readers.
func (s *SubmissionService) cleanupOrphans(ctx context.Context, keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Error(ctx, "orphan cleanup failed", "key", key, "error", err)
		}
	}
}

// Delete removes a submission and its stored media. Only the author may
// delete; anyone else gets ErrorUnauthorized.
func (s *SubmissionService) Delete(ctx context.Context, userID, submissionID string) error {
	repo := s.repomanager.Submissions(s.db)

	submission, err := repo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.UserID != userID {
		return common.ErrorUnauthorized
	}

	if err := repo.Delete(ctx, submissionID); err != nil {
		return err
	}

	// Media removal after the record is gone: readers already cannot see
	// the submission, so a failed delete only leaks storage.
	s.cleanupOrphans(ctx, submission.ImageKeys)
	return nil
}
