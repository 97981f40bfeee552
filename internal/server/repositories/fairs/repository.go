// Package fairs declares the repository contract for fair metadata.
package fairs

import (
	"context"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

type Repository interface {
	// GetByID returns one fair. Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Fair, error)

	// Update rewrites the editable metadata fields of a fair. Returns
	// common.ErrorNotFound when no row was updated.
	Update(ctx context.Context, fair *models.Fair) error
}
