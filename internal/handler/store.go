package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/economy"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// StoreForm is the buy/sell form
type StoreForm struct {
	ItemID string `validate:"required,shopitem"`
	Action string `validate:"required,shopaction"`
}

// StoreHandler serves the store
type StoreHandler struct {
	economySvc economy.Service
	rend       *Renderer
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(economySvc economy.Service, rend *Renderer) *StoreHandler {
	return &StoreHandler{economySvc: economySvc, rend: rend}
}

// Store handles GET /store
func (h *StoreHandler) Store(w http.ResponseWriter, r *http.Request) {
	h.renderStore(w, r, "")
}

// Trade handles POST /store
func (h *StoreHandler) Trade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	form := StoreForm{
		ItemID: strings.TrimSpace(r.PostFormValue("item_id")),
		Action: strings.TrimSpace(r.PostFormValue("action")),
	}
	if err := GetValidator().ValidateStruct(form); err != nil {
		if failedTag(err, "shopitem") {
			h.rend.NotFound(w, r)
			return
		}
		h.renderStore(w, r, joinFieldErrors(FormatValidationError(err)))
		return
	}
	item, err := economy.ParseItem(form.ItemID)
	if err != nil {
		h.tradeFailed(w, r, err)
		return
	}
	action, err := economy.ParseAction(form.Action)
	if err != nil {
		h.tradeFailed(w, r, err)
		return
	}

	receipt, err := h.economySvc.Trade(r.Context(), currentUserID(r), action, item)
	if err != nil {
		h.tradeFailed(w, r, err)
		return
	}

	log.Info("Trade completed", "action", receipt.Action, "item", receipt.Item, "balance", receipt.Balance)
	h.renderStore(w, r, tradeNotice(receipt))
}

// tradeFailed re-renders the store for game-rule failures; unknown items fall through to the 404 page
func (h *StoreHandler) tradeFailed(w http.ResponseWriter, r *http.Request, err error) {
	if kind, msg := classifyError(err); kind == kindNotice {
		h.renderStore(w, r, msg)
		return
	}
	h.rend.Fail(w, r, err)
}

func (h *StoreHandler) renderStore(w http.ResponseWriter, r *http.Request, notice string) {
	front, err := h.economySvc.Storefront(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "store", "Store", notice, front)
}

func tradeNotice(rc *economy.Receipt) string {
	verb := "Bought"
	if rc.Action == economy.ActionSell {
		verb = "Sold"
	}
	return fmt.Sprintf("%s one %s for %d coins. You now have %d coins.", verb, rc.Item, rc.Price, rc.Balance)
}
