// Package httputil centralizes JSON envelopes so every handler responds the
// same way: `{"status":"ok","result":...}` on success and
// `{"error":code,"error_description":msg}` on failure.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "nbfc-gateway/pkg/domain-errors"
)

// Envelope is the success wrapper used by all tool endpoints.
type Envelope struct {
	Status string `json:"status"`
	Result any    `json:"result,omitempty"`
}

// WriteJSON serializes v as-is with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteResult wraps v in the ok envelope.
func WriteResult(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, Envelope{Status: "ok", Result: v})
}

// WriteError translates a domain error into the JSON error envelope.
// Internal errors omit the description so storage or wiring details never
// reach clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	var de *dErrors.Error
	if code != dErrors.CodeInternal && errors.As(err, &de) && de.Message != "" {
		body["error_description"] = de.Message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// Validatable is implemented by request types that parse and check their own
// fields after JSON decoding.
type Validatable interface {
	Validate() error
}

type validatablePtr[T any] interface {
	*T
	Validatable
}

// DecodeAndPrepare decodes the request body into T, runs Validate, and
// writes the error response itself on failure. Handlers bail out when the
// second return is false.
func DecodeAndPrepare[T any, PT validatablePtr[T]](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request body decode failed",
				"request_id", requestID,
				"path", r.URL.Path,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	p := PT(&req)
	if err := p.Validate(); err != nil {
		WriteError(w, err)
		return nil, false
	}
	return p, true
}
