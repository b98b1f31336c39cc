package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/devdocs"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	devdocs.ECONFLICT: http.StatusConflict,
	devdocs.EINVALID:  http.StatusBadRequest,
	devdocs.ENOTFOUND: http.StatusNotFound,
	devdocs.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes err as JSON with the status of its code. Internal errors are
// logged since their message is hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := devdocs.ErrorCode(err), devdocs.ErrorMessage(err)
	if code == devdocs.EINTERNAL {
		logger.ErrorContext(r.Context(), "internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return devdocs.Errorf(devdocs.EINVALID, "Invalid JSON body.")
	}
	return nil
}
