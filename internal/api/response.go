package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/parceltrack/pkg/errors"
)

// ErrorBody is the canonical error shape.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError renders {"error":{"code","message"}}.
func JSONError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, map[string]any{"error": ErrorBody{Code: code, Message: message}})
}

// writeError maps a provider error onto the consumer status codes. The
// cause is never rendered.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeUnexpected
	}
	JSONError(w, errors.HTTPStatus(err), string(code), errors.UserMessage(err))
}
