package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/farm"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// FarmForm is the farm page form
type FarmForm struct {
	Action string `validate:"required,farmaction"`
}

// FarmHandler serves the farm plot
type FarmHandler struct {
	farmSvc farm.Service
	rend    *Renderer
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service, rend *Renderer) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc, rend: rend}
}

// Farm handles GET /farm
func (h *FarmHandler) Farm(w http.ResponseWriter, r *http.Request) {
	h.renderFarm(w, r, "")
}

// Act handles POST /farm
func (h *FarmHandler) Act(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	form := FarmForm{Action: strings.TrimSpace(r.PostFormValue("action"))}
	if err := GetValidator().ValidateStruct(form); err != nil {
		h.renderFarm(w, r, joinFieldErrors(FormatValidationError(err)))
		return
	}
	action, _ := farm.ParseAction(form.Action)

	view, err := h.farmSvc.Act(r.Context(), currentUserID(r), action)
	if err != nil {
		if kind, msg := classifyError(err); kind == kindNotice {
			h.renderFarm(w, r, msg)
			return
		}
		h.rend.Fail(w, r, err)
		return
	}

	log.Info("Farm action applied", "action", action, "stage", view.Stage)
	notice := "Seed planted. Check back soon!"
	if action == farm.ActionHarvest {
		notice = fmt.Sprintf("Harvest collected: +%d food.", farm.HarvestYield)
	}
	h.rend.Page(w, r, http.StatusOK, "farm", "Farm", notice, view)
}

func (h *FarmHandler) renderFarm(w http.ResponseWriter, r *http.Request, notice string) {
	view, err := h.farmSvc.View(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "farm", "Farm", notice, view)
}
