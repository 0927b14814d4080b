package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/importer"
	"github.com/alexanderramin/shopfloor/internal/repository"
)

// maxBodyBytes bounds request bodies; snapshots are the largest payload.
const maxBodyBytes = 8 << 20

type errorJSON struct {
	Error    string      `json:"error"`
	Problems []fieldJSON `json:"problems,omitempty"`
}

type fieldJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// badRequest marks errors caused by the request body itself.
type badRequest struct {
	err error
}

func (e *badRequest) Error() string { return e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response", "error", err)
	}
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var br *badRequest
	var schemaErr *importer.SchemaError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case domain.IsValidation(err), errors.As(err, &br), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	body := errorJSON{Error: err.Error()}

	var v *domain.ValidationError
	if errors.As(err, &v) {
		for _, p := range v.Problems {
			body.Problems = append(body.Problems, fieldJSON{Field: p.Field, Message: p.Message})
		}
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a single JSON object from the request body and rejects
// unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &badRequest{errors.New("request body is empty")}
		}
		return &badRequest{fmt.Errorf("decoding request: %w", err)}
	}
	return nil
}
