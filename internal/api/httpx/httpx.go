package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ekaraca/gymhub-backend/internal/api/validate"
)

type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// WriteValidation renders field errors as a field -> messages map with 400.
func WriteValidation(w http.ResponseWriter, errs validate.Errs) {
	WriteError(w, http.StatusBadRequest, "validation_error", "validation failed", errs.Fields())
}
