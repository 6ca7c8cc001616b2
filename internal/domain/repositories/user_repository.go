// Package repositories declares the persistence contracts for the domain
// entities. Implementations report missing rows as common.ErrNotFound and
// unique-key collisions as common.ErrAlreadyExists.
package repositories

import (
	"context"

	"docledger/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// Delete removes the user and, through the schema's cascade rules, every
	// memo and invoice the user owns.
	Delete(ctx context.Context, id uint) error
}
