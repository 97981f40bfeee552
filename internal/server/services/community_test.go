package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

func newCommunityFixture(t *testing.T) (*CommunityService, *fakeRepoManager) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })

	m := &fakeRepoManager{
		s: &fakeSubmissionsRepo{byID: map[string]*models.Submission{
			"s1": {ID: "s1", UserID: "owner"},
		}},
		v: &fakeVotesRepo{},
		c: &fakeCommentsRepo{},
	}
	return NewCommunityService(db, m), m
}

func TestVote_Success(t *testing.T) {
	svc, m := newCommunityFixture(t)

	if err := svc.Vote(context.Background(), "u1", "s1", models.VoteUp); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if len(m.v.cast) != 1 || m.v.cast[0].VoteType != models.VoteUp {
		t.Fatalf("unexpected votes: %+v", m.v.cast)
	}
}

func TestVote_InvalidType(t *testing.T) {
	svc, m := newCommunityFixture(t)

	if err := svc.Vote(context.Background(), "u1", "s1", "meh"); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
	if len(m.v.cast) != 0 {
		t.Fatal("invalid vote must not be stored")
	}
}

func TestVote_UnknownSubmission(t *testing.T) {
	svc, _ := newCommunityFixture(t)

	if err := svc.Vote(context.Background(), "u1", "ghost", models.VoteDown); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestComment_Success(t *testing.T) {
	svc, m := newCommunityFixture(t)

	c, err := svc.Comment(context.Background(), "u1", "s1", "Great work!")
	if err != nil {
		t.Fatalf("Comment error: %v", err)
	}
	if c.ID == "" || c.Body != "Great work!" {
		t.Fatalf("unexpected comment: %+v", c)
	}
	if len(m.c.created) != 1 {
		t.Fatalf("want 1 stored comment, got %d", len(m.c.created))
	}
}

func TestComment_StripsMarkup(t *testing.T) {
	svc, _ := newCommunityFixture(t)

	c, err := svc.Comment(context.Background(), "u1", "s1", `nice <script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("Comment error: %v", err)
	}
	if c.Body != "nice" {
		t.Fatalf("unexpected sanitized body: %q", c.Body)
	}
}

func TestComment_EmptyAfterSanitize(t *testing.T) {
	svc, _ := newCommunityFixture(t)

	_, err := svc.Comment(context.Background(), "u1", "s1", `<script>only markup</script>`)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestComments_List(t *testing.T) {
	svc, m := newCommunityFixture(t)

	m.c.list = []*models.Comment{
		{ID: "c1", Body: "first"},
		{ID: "c2", Body: "second"},
	}

	got, err := svc.Comments(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Comments error: %v", err)
	}
	if len(got) != 2 || got[0].Body != "first" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}
