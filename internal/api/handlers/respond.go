package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/c4flow/studio-service/internal/errx"
	logx "github.com/c4flow/studio-service/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// writeAppError maps err onto its status and safe message. Server-side
// failures are logged with the underlying cause, which never reaches the body.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errx.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, appErr.Status, appErr.Message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
