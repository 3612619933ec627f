package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/cardframe/pkg/errors"
)

// errorEnvelope is the JSON error body shared by all endpoints.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps structured error codes onto HTTP status codes. Unknown
// codes and plain errors are treated as internal failures.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidContainer,
		errors.ErrCodeInvalidTemplate,
		errors.ErrCodeInvalidRelation,
		errors.ErrCodeInvalidDimension,
		errors.ErrCodeInvalidName,
		errors.ErrCodeUnknownComponent,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeTemplateNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	if status >= 500 {
		s.logger.Error("request failed",
			"id", RequestID(r.Context()), "code", code, "err", err)
	}
	s.writeJSON(w, status, errorEnvelope{
		Error: errorBody{Code: code, Message: errors.UserMessage(err)},
	})
}
