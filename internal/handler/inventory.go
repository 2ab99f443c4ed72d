package handler

import (
	"net/http"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/gacha"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// InventoryHandler serves the inventory and egg hatching pages
type InventoryHandler struct {
	inventorySvc inventory.Service
	gachaSvc     gacha.Service
	rend         *Renderer
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventorySvc inventory.Service, gachaSvc gacha.Service, rend *Renderer) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc, gachaSvc: gachaSvc, rend: rend}
}

// inventoryRow is one line of the inventory table
type inventoryRow struct {
	Item     domain.ItemType
	Quantity int
}

// eggsView is the eggs page model
type eggsView struct {
	Eggs  int
	Hatch *gacha.HatchResult
}

// Inventory handles GET /inventory
func (h *InventoryHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	inv, err := h.inventorySvc.GetInventory(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	rows := make([]inventoryRow, 0, len(domain.AllItemTypes))
	for _, it := range domain.AllItemTypes {
		rows = append(rows, inventoryRow{Item: it, Quantity: inventory.Quantity(inv, it)})
	}
	h.rend.Page(w, r, http.StatusOK, "inventory", "Inventory", "", rows)
}

// Eggs handles GET /inventory/eggs
func (h *InventoryHandler) Eggs(w http.ResponseWriter, r *http.Request) {
	h.renderEggs(w, r, "", nil)
}

// Hatch handles POST /inventory/eggs
func (h *InventoryHandler) Hatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	res, err := h.gachaSvc.Hatch(r.Context(), currentUserID(r))
	if err != nil {
		if kind, msg := classifyError(err); kind == kindNotice {
			h.renderEggs(w, r, msg, nil)
			return
		}
		h.rend.Fail(w, r, err)
		return
	}

	log.Info("Egg hatched", "species", res.Species.Name, "rarity", res.Species.Rarity)
	h.rend.Page(w, r, http.StatusOK, "eggs", "Eggs", "", eggsView{Eggs: res.EggsLeft, Hatch: res})
}

func (h *InventoryHandler) renderEggs(w http.ResponseWriter, r *http.Request, notice string, hatch *gacha.HatchResult) {
	n, err := h.gachaSvc.EggCount(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "eggs", "Eggs", notice, eggsView{Eggs: n, Hatch: hatch})
}
