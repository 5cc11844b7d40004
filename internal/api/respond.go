package api

import (
	"encoding/json"
	"net/http"

	errs "github.com/dana-c0914/tui.chart/pkg/errors"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to a JSON error response. Status is derived from
// the error code; unknown errors become 500 with a generic message so
// internals never leak to callers.
func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	status := statusForCode(code)

	msg := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal error"
		code = errs.ErrCodeInternal
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: msg,
	}})
}

func statusForCode(code errs.Code) int {
	switch code {
	case errs.ErrCodeInvalidInput,
		errs.ErrCodeInvalidSpec,
		errs.ErrCodeInvalidAlign,
		errs.ErrCodeInvalidChartType,
		errs.ErrCodeInvalidLayoutID:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound,
		errs.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	case errs.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
