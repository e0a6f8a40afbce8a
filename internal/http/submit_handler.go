package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/mail"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.mailer.SendNewsletter(r.Context(), req.Email); err != nil {
		h.logger.Printf("newsletter signup failed: %v", err)
		writeSubmissionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var lead mail.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.mailer.SendLead(r.Context(), lead); err != nil {
		h.logger.Printf("lead capture failed: %v", err)
		writeSubmissionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "Email sent successfully"})
}

type orderRequest struct {
	Customer mail.Customer `json:"customer"`
}

// SubmitOrder freezes the cart into an order payload and dispatches it. The
// cart is cleared only after the relay acknowledges success; a failed
// submission leaves it intact so the shopper can try again.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	payload := mail.NewOrderPayload(req.Customer, h.store.Items(), h.store.Totals())

	h.logger.Printf("order %s received: %d items, total %d",
		payload.Reference, len(payload.Items), payload.Totals.Total)

	if err := h.mailer.SendOrder(r.Context(), payload); err != nil {
		h.logger.Printf("order %s failed: %v", payload.Reference, err)
		writeSubmissionError(w, err)
		return
	}

	h.store.Clear()
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "reference": payload.Reference})
}
