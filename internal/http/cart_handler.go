package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/cart"
	"github.com/codeCrafterX-33/discoverCrismyla/internal/tax"
	"github.com/go-chi/chi/v5"
)

type cartResponse struct {
	Items    []cart.Item `json:"items"`
	Province string      `json:"province,omitempty"`
	Count    int         `json:"count"`
	Totals   cart.Totals `json:"totals"`
}

func (h *Handler) cartState() cartResponse {
	items := h.store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{
		Items:    items,
		Province: h.store.Province(),
		Count:    h.store.Count(),
		Totals:   h.store.Totals(),
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartState())
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, ok := h.catalog.Get(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	// The catalog price is captured here; later price changes do not touch
	// items already in the cart.
	item := cart.Item{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
	}
	if err := h.store.AddItem(item, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	writeJSON(w, http.StatusOK, h.cartState())
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing itemId")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	h.store.UpdateQuantity(id, req.Quantity)
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing itemId")
		return
	}

	h.store.RemoveItem(id)
	writeJSON(w, http.StatusOK, h.cartState())
}

// NormalizeCart bumps zero-quantity lines to one. The frontend calls this
// when the shopper moves from the cart page to checkout.
func (h *Handler) NormalizeCart(w http.ResponseWriter, r *http.Request) {
	h.store.NormalizeQuantities()
	writeJSON(w, http.StatusOK, h.cartState())
}

type setProvinceRequest struct {
	Province string `json:"province"`
}

func (h *Handler) SetProvince(w http.ResponseWriter, r *http.Request) {
	var req setProvinceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Province != "" && !tax.Valid(req.Province) {
		writeError(w, http.StatusBadRequest, "unknown province")
		return
	}

	h.store.SetProvince(string(tax.Normalize(req.Province)))
	writeJSON(w, http.StatusOK, h.cartState())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	writeJSON(w, http.StatusOK, h.cartState())
}
