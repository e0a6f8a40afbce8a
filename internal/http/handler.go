// Package httpapi exposes the storefront over HTTP: catalog reads, cart
// mutations and the three submission endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/cart"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/catalog"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/mail"
)

// Mailer is the submission boundary the handlers dispatch through; the
// concrete implementation is mail.Client.
type Mailer interface {
	SendNewsletter(ctx context.Context, email string) error
	SendLead(ctx context.Context, lead mail.Lead) error
	SendOrder(ctx context.Context, payload mail.OrderPayload) error
}

type Handler struct {
	store   *cart.Store
	catalog *catalog.Repository
	mailer  Mailer
	logger  *log.Logger
}

func NewHandler(store *cart.Store, catalog *catalog.Repository, mailer Mailer, logger *log.Logger) *Handler {
	return &Handler{store: store, catalog: catalog, mailer: mailer, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeSubmissionError maps the mail error taxonomy onto HTTP statuses and
// tells the caller whether a manual retry is worth offering.
func writeSubmissionError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var ve *mail.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	case errors.Is(err, mail.ErrSubmissionInFlight):
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]any{
		"error":     err.Error(),
		"retryable": mail.Retryable(err),
	})
}
