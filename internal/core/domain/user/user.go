package user

import (
	c "tabnews/internal/core/domain/common"
	"time"
)

type ID int64

// Feature is a named capability attached to a user record. Authorized
// actions are checked against the user's feature set.
type Feature string

const (
	FeatureReadActivationToken Feature = "read:activation_token"
	FeatureCreateSession       Feature = "create:session"
	FeatureReadSession         Feature = "read:session"
	FeatureCreatePost          Feature = "create:post"
	FeatureCreateComment       Feature = "create:comment"
	FeatureUpdateUser          Feature = "update:user"
)

// ActivationFeatures is the set granted to a user when their account is
// activated.
func ActivationFeatures() []Feature {
	return []Feature{
		FeatureCreateSession,
		FeatureReadSession,
		FeatureCreatePost,
		FeatureCreateComment,
		FeatureUpdateUser,
	}
}

type User struct {
	ID        ID
	Username  string
	Email     c.Email
	Features  []Feature
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) HasFeature(feature Feature) bool {
	for _, f := range u.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// IsActive reports whether the account already went through activation.
func (u *User) IsActive() bool {
	return !u.HasFeature(FeatureReadActivationToken)
}
