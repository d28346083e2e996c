package ui

import (
	"encoding/json"
	"net/http"

	"rsccard/internal/card"
)

// Home renders the landing page with a form for pasting a table.
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	renderHTML(w, http.StatusOK, homePage())
}

// Cards renders the posted table as a bare sequence of cards. The caller owns
// the surrounding container.
func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardsFromRequest(w, r)
	if err != nil {
		status, _, message := errorStatus(err)
		h.logError(r, status, err)
		http.Error(w, message, status)
		return
	}
	renderHTML(w, http.StatusOK, card.Group(cards))
}

// Widget renders the posted table as a full page with a filterable grid.
func (h *Handler) Widget(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardsFromRequest(w, r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.Logger.DebugContext(r.Context(), "rendered widget", "cards", len(cards))
	renderHTML(w, http.StatusOK, widgetPage("Content", cards))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
