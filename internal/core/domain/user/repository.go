package user

import (
	"context"
	c "tabnews/internal/core/domain/common"
)

type CreateUserInput struct {
	Username string
	Email    c.Email
	Features []Feature
}

type Repository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	AddFeatures(ctx context.Context, id ID, features []Feature) (User, error)
	RemoveFeatures(ctx context.Context, id ID, features []Feature) (User, error)
}
