package activateuser

import (
	"encoding/json"
	"io"
	"net/http"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/services"
	activateuser "tabnews/internal/core/services/activate_user"
	"tabnews/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[activateuser.Input, activateuser.Result]
}

func New(
	service services.Service[activateuser.Input, activateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	TokenID string `json:"token_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TokenID, validation.Required, is.UUID),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		activateuser.Input{TokenID: activation.TokenID(input.TokenID)},
	)
	if err != nil {
		if !response.RenderDomainError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	token := response.Token{}
	token.FromDomainToken(result.Token)
	response.Render(rw, token, http.StatusOK)
}
