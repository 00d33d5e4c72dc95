package uow

import (
	"context"
	"tabnews/internal/core/domain/activation"
	"tabnews/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.Repository
	Tokens() activation.TokenRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
