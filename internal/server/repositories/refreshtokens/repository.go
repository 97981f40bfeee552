// Package refreshtokens stores the server-side half of the token pair: the
// opaque refresh tokens that let a client mint new access tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

// Repository covers the refresh-token lifecycle: issue, look up, revoke, and
// purge. Deleting an absent token is not an error.
type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns the token's metadata, or a not-found error.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	Delete(ctx context.Context, token string) error

	// PurgeExpired removes tokens whose expiry has passed and reports how
	// many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
