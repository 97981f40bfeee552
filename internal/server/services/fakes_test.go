package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/server/blob"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/comments"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/fairs"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/submissions"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/users"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/votes"
)

// -------- test fakes --------

type fakeUsersRepo struct {
	users.Repository
	byID      map[string]*models.User
	byLogin   map[string]*models.User
	created   []*models.User
	createErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = fmt.Sprintf("u%d", len(f.created)+1)
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByLogin(ctx context.Context, userName string) (*models.User, error) {
	if u, ok := f.byLogin[userName]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeRefreshTokensRepo struct {
	refreshtokens.Repository
	tokens  map[string]*models.RefreshToken
	findErr error

	mu      sync.Mutex
	created []string
	deleted []string
}

func (f *fakeRefreshTokensRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshTokensRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRefreshTokensRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeSubmissionsRepo struct {
	submissions.Repository
	byID      map[string]*models.Submission
	list      []*models.Submission
	listErr   error
	created   []*models.Submission
	createErr error
	deleted   []string
	deleteErr error
}

func (f *fakeSubmissionsRepo) Create(ctx context.Context, s *models.Submission) (*models.Submission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = fmt.Sprintf("s%d", len(f.created)+1)
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSubmissionsRepo) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSubmissionsRepo) ListByFair(ctx context.Context, fairID string) ([]*models.Submission, error) {
	return f.list, f.listErr
}

func (f *fakeSubmissionsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeFairsRepo struct {
	fairs.Repository
	byID      map[string]*models.Fair
	updated   []*models.Fair
	updateErr error
}

func (f *fakeFairsRepo) GetByID(ctx context.Context, id string) (*models.Fair, error) {
	if fr, ok := f.byID[id]; ok {
		return fr, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFairsRepo) Update(ctx context.Context, fair *models.Fair) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, fair)
	return nil
}

type fakeVotesRepo struct {
	votes.Repository
	cast     []*models.Vote
	castErr  error
	counts   votes.Counts
	countErr error
}

func (f *fakeVotesRepo) Cast(ctx context.Context, v *models.Vote) error {
	if f.castErr != nil {
		return f.castErr
	}
	f.cast = append(f.cast, v)
	return nil
}

func (f *fakeVotesRepo) CountBySubmission(ctx context.Context, submissionID string) (votes.Counts, error) {
	return f.counts, f.countErr
}

type fakeCommentsRepo struct {
	comments.Repository
	created  []*models.Comment
	list     []*models.Comment
	count    int
	countErr error
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	c.ID = fmt.Sprintf("c%d", len(f.created)+1)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCommentsRepo) ListBySubmission(ctx context.Context, submissionID string) ([]*models.Comment, error) {
	return f.list, nil
}

func (f *fakeCommentsRepo) CountBySubmission(ctx context.Context, submissionID string) (int, error) {
	return f.count, f.countErr
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u  *fakeUsersRepo
	rt *fakeRefreshTokensRepo
	s  *fakeSubmissionsRepo
	f  *fakeFairsRepo
	v  *fakeVotesRepo
	c  *fakeCommentsRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository { return m.rt }
func (m *fakeRepoManager) Submissions(db dbx.DBTX) submissions.Repository     { return m.s }
func (m *fakeRepoManager) Fairs(db dbx.DBTX) fairs.Repository                 { return m.f }
func (m *fakeRepoManager) Votes(db dbx.DBTX) votes.Repository                 { return m.v }
func (m *fakeRepoManager) Comments(db dbx.DBTX) comments.Repository           { return m.c }

// fakeBlobStore hands out sequential keys and records deletions. URLs point
// at whatever base the test wires in (usually an httptest server).
type fakeBlobStore struct {
	mu       sync.Mutex
	n        int
	baseURL  string
	issueErr error

	resolveErr  error
	resolvedFmt string

	deleted []string
}

var _ blob.Store = (*fakeBlobStore)(nil)

func (f *fakeBlobStore) IssueUploadTarget(ctx context.Context) (*blob.UploadTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	f.n++
	key := fmt.Sprintf("fairs/test/k%d", f.n)
	return &blob.UploadTarget{Key: key, URL: f.baseURL + "/" + key}, nil
}

func (f *fakeBlobStore) ResolveURL(ctx context.Context, key string) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	format := f.resolvedFmt
	if format == "" {
		format = "http://cdn.test/%s"
	}
	return fmt.Sprintf(format, key), nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}
