// Package users declares the server-side repository contract for portal
// accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/fairhub/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the generated ID.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin returns the user with the given username, including
	// credential material. Returns common.ErrorNotFound when absent.
	GetByLogin(ctx context.Context, userName string) (*models.User, error)

	// GetByID returns the user with the given id, without credential
	// material. Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
