package grantactivation

import (
	"context"
	c "tabnews/internal/core/domain/common"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	uow "tabnews/internal/core/domain/unit_of_work"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID  = user.ID(42)
	USERNAME = "ana"
	EMAIL    = c.Email("ana@x.com")
)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.service = New(suite.Logger, suite.UnitOfWork)
}

func (suite *testSuite) addUser(features []user.Feature) {
	suite.UnitOfWork.Users().Users[USER_ID] = user.User{
		ID:       USER_ID,
		Username: USERNAME,
		Email:    EMAIL,
		Features: features,
	}
}

func TestGrantActivationService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.addUser([]user.Feature{user.FeatureReadActivationToken})

	result, err := s.service.Run(context.Background(), Input{UserID: USER_ID})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(USER_ID, result.User.ID)
	assert.False(result.User.HasFeature(user.FeatureReadActivationToken))
	for _, feature := range user.ActivationFeatures() {
		assert.True(result.User.HasFeature(feature))
	}
	assert.True(s.UnitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestUserDoesNotExist() {
	_, err := s.service.Run(context.Background(), Input{UserID: USER_ID})

	assert := s.Require()
	var errNotFound *e.NotFoundError
	assert.ErrorAs(err, &errNotFound)
	assert.False(s.UnitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestAlreadyActiveUserFailsForbidden() {
	s.addUser(user.ActivationFeatures())

	_, err := s.service.Run(context.Background(), Input{UserID: USER_ID})

	assert := s.Require()
	var errForbidden *e.ForbiddenError
	assert.ErrorAs(err, &errForbidden)
	assert.Contains(errForbidden.Message, USERNAME)
	assert.Equal(0, s.UnitOfWork.Users().FeatureWriteCount())
	assert.False(s.UnitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestUserWithoutAnyFeaturesFailsForbidden() {
	s.addUser(nil)

	_, err := s.service.Run(context.Background(), Input{UserID: USER_ID})

	assert := s.Require()
	var errForbidden *e.ForbiddenError
	assert.ErrorAs(err, &errForbidden)
	assert.Equal(0, s.UnitOfWork.Users().FeatureWriteCount())
}
