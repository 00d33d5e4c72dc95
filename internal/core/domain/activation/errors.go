package activation

import (
	"fmt"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/user"
)

// NewTokenNotFoundError covers both an unknown token id and an
// expired/used token. The two conditions are deliberately reported the
// same way.
func NewTokenNotFoundError(id TokenID) *e.NotFoundError {
	return e.NewNotFoundError(
		fmt.Sprintf(`O token "%s" não foi encontrado no sistema ou expirou.`, id),
		`Faça um novo cadastro.`,
	)
}

func NewUserTokenNotFoundError(userID user.ID) *e.NotFoundError {
	return e.NewNotFoundError(
		fmt.Sprintf(`O token relacionado ao userId "%d" não foi encontrado no sistema.`, userID),
		`Verifique se o "id" do usuário está digitado corretamente.`,
	)
}
