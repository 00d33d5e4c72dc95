package user

import (
	"fmt"
	e "tabnews/internal/core/domain/errors"
)

func NewUserNotFoundError(id ID) *e.NotFoundError {
	return e.NewNotFoundError(
		fmt.Sprintf(`O id "%d" não foi encontrado no sistema.`, id),
		`Verifique se o "id" está digitado corretamente.`,
	)
}

func NewCannotReadActivationTokenError(username string) *e.ForbiddenError {
	return e.NewForbiddenError(
		fmt.Sprintf(`O usuário "%s" não pode ler o token de ativação.`, username),
		`Verifique se você está tentando ativar o usuário correto, se ele possui a feature "read:activation_token", ou se ele já está ativo.`,
	)
}
