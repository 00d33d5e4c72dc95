package authorization

import (
	"tabnews/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCan(t *testing.T) {
	assert := require.New(t)

	u := user.User{Features: []user.Feature{user.FeatureReadActivationToken}}
	assert.True(Can(u, user.FeatureReadActivationToken))
	assert.False(Can(u, user.FeatureCreateSession))
	assert.False(Can(user.User{}, user.FeatureReadActivationToken))
}
