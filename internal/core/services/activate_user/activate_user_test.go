package activateuser

import (
	"context"
	"tabnews/internal/core/domain/activation"
	c "tabnews/internal/core/domain/common"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	uow "tabnews/internal/core/domain/unit_of_work"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID  = user.ID(42)
	USERNAME = "ana"
	EMAIL    = c.Email("ana@x.com")
	TOKEN_ID = activation.TokenID("2ecac55a-d0a9-4e0b-9a4f-c21cbeabc77c")
)

var NOW = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.UnitOfWork.Users().Users[USER_ID] = user.User{
		ID:       USER_ID,
		Username: USERNAME,
		Email:    EMAIL,
		Features: []user.Feature{user.FeatureReadActivationToken},
	}
	suite.UnitOfWork.Tokens().Now = func() time.Time { return NOW }
	suite.service = New(suite.Logger, suite.UnitOfWork)
}

func (suite *testSuite) createToken(used bool, expiresAt time.Time) activation.Token {
	token := activation.Token{
		ID:        TOKEN_ID,
		UserID:    USER_ID,
		Used:      used,
		ExpiresAt: expiresAt,
		CreatedAt: NOW.Add(-time.Minute),
	}
	suite.UnitOfWork.Tokens().Tokens = append(suite.UnitOfWork.Tokens().Tokens, token)
	return token
}

func TestActivateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.createToken(false, NOW.Add(activation.TokenValidDuration))

	result, err := s.service.Run(context.Background(), Input{TokenID: TOKEN_ID})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(TOKEN_ID, result.Token.ID)
	assert.True(result.Token.Used)

	activatedUser := s.UnitOfWork.Users().Users[USER_ID]
	assert.False(activatedUser.HasFeature(user.FeatureReadActivationToken))
	for _, feature := range user.ActivationFeatures() {
		assert.True(activatedUser.HasFeature(feature))
	}
	assert.True(s.UnitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestSecondRedemptionIsNoOp() {
	s.createToken(false, NOW.Add(activation.TokenValidDuration))

	_, err := s.service.Run(context.Background(), Input{TokenID: TOKEN_ID})
	s.Require().Nil(err)
	writesAfterFirst := s.UnitOfWork.Users().FeatureWriteCount()

	result, err := s.service.Run(context.Background(), Input{TokenID: TOKEN_ID})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(TOKEN_ID, result.Token.ID)
	assert.True(result.Token.Used)
	// The replay returns the used token without touching permissions.
	assert.Equal(writesAfterFirst, s.UnitOfWork.Users().FeatureWriteCount())
}

func (s *testSuite) TestExpiredTokenFailsNotFound() {
	s.createToken(false, NOW.Add(-time.Second))

	_, err := s.service.Run(context.Background(), Input{TokenID: TOKEN_ID})

	assert := s.Require()
	var errNotFound *e.NotFoundError
	assert.ErrorAs(err, &errNotFound)
	assert.False(s.UnitOfWork.Context.WasCommitCalled)
	assert.Equal(0, s.UnitOfWork.Users().FeatureWriteCount())
}

func (s *testSuite) TestUnknownTokenFailsNotFound() {
	_, err := s.service.Run(context.Background(), Input{TokenID: activation.TokenID("missing")})

	assert := s.Require()
	var errNotFound *e.NotFoundError
	assert.ErrorAs(err, &errNotFound)
	assert.False(s.UnitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestOwnerWithoutFeatureFailsForbidden() {
	s.createToken(false, NOW.Add(activation.TokenValidDuration))
	s.UnitOfWork.Users().Users[USER_ID] = user.User{
		ID:       USER_ID,
		Username: USERNAME,
		Email:    EMAIL,
		Features: user.ActivationFeatures(),
	}

	_, err := s.service.Run(context.Background(), Input{TokenID: TOKEN_ID})

	assert := s.Require()
	var errForbidden *e.ForbiddenError
	assert.ErrorAs(err, &errForbidden)
	assert.Equal(0, s.UnitOfWork.Users().FeatureWriteCount())
	assert.False(s.UnitOfWork.Context.WasCommitCalled)

	token, tokenErr := s.UnitOfWork.Tokens().GetByID(context.Background(), TOKEN_ID)
	assert.Nil(tokenErr)
	assert.False(token.Used)
}

func (s *testSuite) TestRollbackCalledOnFailure() {
	_, err := s.service.Run(context.Background(), Input{TokenID: activation.TokenID("missing")})

	assert := s.Require()
	assert.NotNil(err)
	assert.True(s.UnitOfWork.Context.WasRollbackCalled)
}
