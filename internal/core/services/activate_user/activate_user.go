package activateuser

import (
	"context"
	"errors"
	"fmt"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	uow "tabnews/internal/core/domain/unit_of_work"
	"tabnews/internal/core/services"
	grantactivation "tabnews/internal/core/services/grant_activation"
)

type Input struct {
	TokenID activation.TokenID
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("activate_user::%s", i.TokenID)
}

type Result struct {
	Token activation.Token
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

// Run redeems an activation token. The validity re-check, the permission
// writes and the used flip happen in a single transaction, so a token can
// activate an account at most once.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
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

	token, err := uow.Tokens().GetByID(ctx, input.TokenID)
	var errNotFound *e.NotFoundError
	if errors.As(err, &errNotFound) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not read activation token.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	// Redeeming an already used token is a no-op success.
	if token.Used {
		return Result{Token: token}, nil
	}

	token, err = uow.Tokens().GetValidByID(ctx, input.TokenID)
	if errors.As(err, &errNotFound) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not read valid activation token.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	activatedUser, err := grantactivation.Grant(ctx, uow.Users(), token.UserID)
	var errForbidden *e.ForbiddenError
	if errors.As(err, &errNotFound) || errors.As(err, &errForbidden) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not grant activation to the token owner.",
			logging.Entry("tokenId", token.ID),
			logging.Entry("userId", token.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err = uow.Tokens().MarkUsed(ctx, token.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not mark activation token as used.",
			logging.Entry("tokenId", input.TokenID),
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

	s.log.Info(
		ctx,
		"User successfully activated by token.",
		logging.Entry("tokenId", token.ID),
		logging.Entry("userId", activatedUser.ID),
	)
	return Result{Token: token}, nil
}
