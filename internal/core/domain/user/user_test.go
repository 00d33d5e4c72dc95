package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasFeature(t *testing.T) {
	assert := require.New(t)

	u := User{Features: []Feature{FeatureReadActivationToken}}
	assert.True(u.HasFeature(FeatureReadActivationToken))
	assert.False(u.HasFeature(FeatureCreateSession))

	empty := User{}
	assert.False(empty.HasFeature(FeatureReadActivationToken))
}

func TestIsActive(t *testing.T) {
	assert := require.New(t)

	pending := User{Features: []Feature{FeatureReadActivationToken}}
	assert.False(pending.IsActive())

	active := User{Features: ActivationFeatures()}
	assert.True(active.IsActive())
}

func TestActivationFeatures(t *testing.T) {
	assert := require.New(t)

	features := ActivationFeatures()
	assert.Equal(
		[]Feature{
			FeatureCreateSession,
			FeatureReadSession,
			FeatureCreatePost,
			FeatureCreateComment,
			FeatureUpdateUser,
		},
		features,
	)
	assert.NotContains(features, FeatureReadActivationToken)
}
