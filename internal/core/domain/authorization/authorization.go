package authorization

import "tabnews/internal/core/domain/user"

// Can reports whether the user holds the given feature.
func Can(u user.User, feature user.Feature) bool {
	return u.HasFeature(feature)
}
