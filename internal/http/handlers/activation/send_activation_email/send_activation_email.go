package sendactivationemail

import (
	"encoding/json"
	"io"
	"net/http"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
	sendactivationemail "tabnews/internal/core/services/send_activation_email"
	"tabnews/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service    services.Service[sendactivationemail.Input, sendactivationemail.Result]
	isTestMode bool
}

func New(
	service services.Service[sendactivationemail.Input, sendactivationemail.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	UserID int64 `json:"user_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required, validation.Min(1)),
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
		sendactivationemail.Input{UserID: user.ID(input.UserID)},
	)
	if err != nil {
		if !response.RenderDomainError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-activation-token", string(result.Token.ID))
	}
	response.Render(rw, struct{}{}, http.StatusCreated)
}
