package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/mission"
)

// MissionForm is the dispatch form. DragonID carries the species ID of an owned dragon.
type MissionForm struct {
	Region   string `validate:"required,region"`
	DragonID string `validate:"required,numeric"`
}

// MissionHandler handles dispatching and reward collection
type MissionHandler struct {
	missionSvc mission.Service
	rend       *Renderer
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(missionSvc mission.Service, rend *Renderer) *MissionHandler {
	return &MissionHandler{missionSvc: missionSvc, rend: rend}
}

// Missions handles GET /missions
func (h *MissionHandler) Missions(w http.ResponseWriter, r *http.Request) {
	h.renderBoard(w, r, "")
}

// Dispatch handles POST /missions
func (h *MissionHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	form := MissionForm{
		Region:   strings.TrimSpace(r.PostFormValue("region")),
		DragonID: strings.TrimSpace(r.PostFormValue("dragon_id")),
	}
	if err := GetValidator().ValidateStruct(form); err != nil {
		h.renderBoard(w, r, joinFieldErrors(FormatValidationError(err)))
		return
	}
	speciesID, err := strconv.Atoi(form.DragonID)
	if err != nil || speciesID <= 0 {
		h.renderBoard(w, r, ErrMsgInvalidDragonID)
		return
	}
	region, err := mission.ParseRegion(form.Region)
	if err != nil {
		h.dispatchFailed(w, r, err)
		return
	}

	m, err := h.missionSvc.Dispatch(r.Context(), currentUserID(r), speciesID, region)
	if err != nil {
		h.dispatchFailed(w, r, err)
		return
	}

	log.Info("Mission dispatched", "speciesID", m.SpeciesID, "region", m.Region)
	http.Redirect(w, r, "/missions", http.StatusSeeOther)
}

func (h *MissionHandler) dispatchFailed(w http.ResponseWriter, r *http.Request, err error) {
	if kind, msg := classifyError(err); kind == kindNotice {
		h.renderBoard(w, r, msg)
		return
	}
	h.rend.Fail(w, r, err)
}

func (h *MissionHandler) renderBoard(w http.ResponseWriter, r *http.Request, notice string) {
	board, err := h.missionSvc.Board(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "missions", "Missions", notice, board)
}

// ClaimReward handles GET and POST /claim_reward, resolving every finished mission
func (h *MissionHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	res, err := h.missionSvc.ClaimRewards(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "claim_reward", "Rewards", "", claimView{
		ClaimResult: res,
		Items:       domain.AllItemTypes,
	})
}

// claimView adds the item display order to a claim result
type claimView struct {
	*mission.ClaimResult
	Items []domain.ItemType
}
