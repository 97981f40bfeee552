// Package httpapi exposes the portal over HTTP/JSON. Routing is chi-based;
// all endpoints except registration, login, refresh, and the health probe
// require a bearer access token.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/logging"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/dmitrijs2005/fairhub/internal/server/services"
)

// UserAPI is the authentication surface consumed by the handlers.
type UserAPI interface {
	Register(ctx context.Context, userName, displayName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ResolveToken(tokenString string) (string, error)
}

// SubmissionAPI is the ingestion surface consumed by the handlers.
type SubmissionAPI interface {
	Ingest(ctx context.Context, userID string, req *services.IngestRequest) (*models.Submission, error)
	Delete(ctx context.Context, userID, submissionID string) error
}

// ListingAPI is the read surface consumed by the handlers.
type ListingAPI interface {
	List(ctx context.Context, fairID string) ([]*services.SubmissionView, error)
	Get(ctx context.Context, submissionID string) (*services.SubmissionView, error)
}

// FairAPI is the fair-metadata surface consumed by the handlers.
type FairAPI interface {
	Get(ctx context.Context, fairID string) (*models.Fair, error)
	Update(ctx context.Context, userID string, fair *models.Fair) (*models.Fair, error)
}

// CommunityAPI is the votes-and-comments surface consumed by the handlers.
type CommunityAPI interface {
	Vote(ctx context.Context, userID, submissionID, voteType string) error
	Comment(ctx context.Context, userID, submissionID, body string) (*models.Comment, error)
	Comments(ctx context.Context, submissionID string) ([]*models.Comment, error)
}

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	users       UserAPI
	submissions SubmissionAPI
	listings    ListingAPI
	fairs       FairAPI
	community   CommunityAPI
	logger      logging.Logger
}

func NewHandler(users UserAPI, submissions SubmissionAPI, listings ListingAPI, fairs FairAPI, community CommunityAPI, logger logging.Logger) *Handler {
	return &Handler{
		users:       users,
		submissions: submissions,
		listings:    listings,
		fairs:       fairs,
		community:   community,
		logger:      logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Storage-side failures
// (upload or resolution) surface as bad gateway since the fault is in the
// blob backend, not the request.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrUploadFailed), errors.Is(err, common.ErrMissingObject):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(ctx, "request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
}
