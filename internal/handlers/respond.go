package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/lojf/ecaplanner/internal/services"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error  string                `json:"error"`
	Reason string                `json:"reason,omitempty"`
	Fields []services.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP statuses. Anything unknown is
// logged and reported as a 500 without details.
func writeError(env *Env, w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	var nse *services.NotSelectableError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Error(), Fields: verr.Fields})
	case errors.As(err, &nse):
		writeJSON(w, http.StatusConflict, errorBody{Error: "activity not selectable", Reason: nse.Reason})
	case errors.Is(err, services.ErrChildNotFound), errors.Is(err, services.ErrActivityNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: errors.Cause(err).Error()})
	case errors.Is(err, services.ErrGuardianRequired):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: services.ErrGuardianRequired.Error()})
	default:
		env.Log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err.Error(),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}
