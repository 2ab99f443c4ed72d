package handler

import (
	"net/http"

	"github.com/osse101/DragonKeeper_Go/internal/streak"
)

// HomeHandler serves the player's home page, which also claims the daily bonus
type HomeHandler struct {
	streakSvc streak.Service
	rend      *Renderer
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(streakSvc streak.Service, rend *Renderer) *HomeHandler {
	return &HomeHandler{streakSvc: streakSvc, rend: rend}
}

// YourHome handles GET /yourhome
func (h *HomeHandler) YourHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.streakSvc.Visit(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "yourhome", "Your home", "", home)
}
