package uow

import (
	"context"
	"errors"
	"tabnews/internal/core/domain/activation"
	"tabnews/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository    *user.FakeUserRepository
	TokenRepository   *activation.FakeTokenRepository
	WasRollbackCalled bool
	WasCommitCalled   bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	tokenRepository *activation.FakeTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:  userRepository,
		TokenRepository: tokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.Repository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Tokens() activation.TokenRepository {
	return c.TokenRepository
}

type FakeUnitOfWork struct {
	Context          *FakeUnitOfWorkContext
	ReturnBeginError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			activation.NewFakeTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnBeginError {
		return nil, errors.New("could not begin unit of work")
	}
	return u.Context, nil
}

func (u *FakeUnitOfWork) Users() *user.FakeUserRepository {
	return u.Context.UserRepository
}

func (u *FakeUnitOfWork) Tokens() *activation.FakeTokenRepository {
	return u.Context.TokenRepository
}
