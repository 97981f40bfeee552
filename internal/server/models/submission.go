package models

import "time"

// Submission is one competitor's entry into a fair. ImageKeys holds the
// object-storage keys of the uploaded media in the order the files were
// selected; UserID and FairID are set once at creation and never change.
type Submission struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	About     string    `json:"about"`
	ImageURL  string    `json:"image_url"`
	Format    string    `json:"format"`
	ImageKeys []string  `json:"-"`
	UserID    string    `json:"user_id"`
	FairID    string    `json:"fair_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Vote is one user's up/down vote on a submission. A user has at most one
// vote per submission; casting again replaces it.
type Vote struct {
	SubmissionID string `json:"submission_id"`
	UserID       string `json:"user_id"`
	VoteType     string `json:"vote_type"`
}

// Vote types.
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Comment is a flat comment on a submission.
type Comment struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}
