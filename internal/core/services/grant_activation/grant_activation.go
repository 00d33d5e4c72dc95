package grantactivation

import (
	"context"
	"errors"
	"tabnews/internal/core/domain/authorization"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	uow "tabnews/internal/core/domain/unit_of_work"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	User user.User
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{log: log, unitOfWork: unitOfWork}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	activatedUser, err := Grant(ctx, uow.Users(), input.UserID)
	var errNotFound *e.NotFoundError
	var errForbidden *e.ForbiddenError
	if errors.As(err, &errNotFound) || errors.As(err, &errForbidden) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not grant activation to the user.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userId", activatedUser.ID))
	return Result{User: activatedUser}, nil
}

// Grant flips the user from the pending to the activated permission set.
// The user must still hold the read:activation_token feature; an already
// active user (or a wrong target) fails the capability check. Callers are
// expected to run it inside a transaction.
func Grant(ctx context.Context, users user.Repository, userID user.ID) (user.User, error) {
	userToActivate, err := users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if !authorization.Can(userToActivate, user.FeatureReadActivationToken) {
		return user.User{}, user.NewCannotReadActivationTokenError(userToActivate.Username)
	}

	_, err = users.RemoveFeatures(ctx, userToActivate.ID, []user.Feature{user.FeatureReadActivationToken})
	if err != nil {
		return user.User{}, err
	}
	return users.AddFeatures(ctx, userToActivate.ID, user.ActivationFeatures())
}
