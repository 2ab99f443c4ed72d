package handler

import (
	"net/http"

	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/mission"
)

// PageHandler serves the public pages
type PageHandler struct {
	catalog catalog.Catalog
	rend    *Renderer
}

// NewPageHandler creates a new public page handler
func NewPageHandler(cat catalog.Catalog, rend *Renderer) *PageHandler {
	return &PageHandler{catalog: cat, rend: rend}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, r, http.StatusOK, "home", "Dragon Keeper", "", nil)
}

// Map handles GET /map
func (h *PageHandler) Map(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, r, http.StatusOK, "map", "World Map", "", mission.Regions())
}

// Gallery handles GET /dragons, the public species list
func (h *PageHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	species, err := h.catalog.List(r.Context())
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "dragons", "Dragons", "", species)
}
