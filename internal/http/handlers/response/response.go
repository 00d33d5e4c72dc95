package response

import (
	"encoding/json"
	"errors"
	"net/http"
	e "tabnews/internal/core/domain/errors"
	ratelimiter "tabnews/internal/core/domain/rate_limiter"
)

type errorResponse struct {
	Error string `json:"error"`
}

type domainErrorResponse struct {
	Message    string `json:"message"`
	Action     string `json:"action"`
	StatusCode int    `json:"status_code"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

// RenderDomainError translates the error taxonomy into a response and
// reports whether it handled the error. Unknown errors are left to the
// caller.
func RenderDomainError(rw http.ResponseWriter, err error) bool {
	var errNotFound *e.NotFoundError
	if errors.As(err, &errNotFound) {
		Render(rw, domainErrorResponse{
			Message:    errNotFound.Message,
			Action:     errNotFound.Action,
			StatusCode: http.StatusNotFound,
		}, http.StatusNotFound)
		return true
	}
	var errForbidden *e.ForbiddenError
	if errors.As(err, &errForbidden) {
		Render(rw, domainErrorResponse{
			Message:    errForbidden.Message,
			Action:     errForbidden.Action,
			StatusCode: http.StatusForbidden,
		}, http.StatusForbidden)
		return true
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		RenderRateLimitExceeded(rw)
		return true
	}
	return false
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
