package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/dragon"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// CareForm is the care page form
type CareForm struct {
	Dragon string `validate:"required,max=100"`
	Action string `validate:"required,careaction"`
}

// DragonHandler serves the owned-dragon list and the care page
type DragonHandler struct {
	dragonSvc dragon.Service
	rend      *Renderer
}

// NewDragonHandler creates a new dragon handler
func NewDragonHandler(dragonSvc dragon.Service, rend *Renderer) *DragonHandler {
	return &DragonHandler{dragonSvc: dragonSvc, rend: rend}
}

// MyDragons handles GET /mydragons
func (h *DragonHandler) MyDragons(w http.ResponseWriter, r *http.Request) {
	views, err := h.dragonSvc.ListDragons(r.Context(), currentUserID(r))
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	notice := ""
	if len(views) == 0 {
		notice = MsgNoDragonsYet
	}
	h.rend.Page(w, r, http.StatusOK, "mydragons", "My dragons", notice, views)
}

// CarePage handles GET /carefor?dragon=<name>
func (h *DragonHandler) CarePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("dragon"))
	if name == "" {
		http.Redirect(w, r, "/mydragons", http.StatusSeeOther)
		return
	}
	res, err := h.dragonSvc.GetDragon(r.Context(), currentUserID(r), name)
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "carefor", "Care for "+res.View.Species.Name, "", res)
}

// Care handles POST /carefor
func (h *DragonHandler) Care(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := currentUserID(r)
	form := CareForm{
		Dragon: strings.TrimSpace(r.FormValue("dragon")),
		Action: strings.TrimSpace(r.PostFormValue("action")),
	}
	if form.Dragon == "" {
		http.Redirect(w, r, "/mydragons", http.StatusSeeOther)
		return
	}
	if err := GetValidator().ValidateStruct(form); err != nil {
		h.renderWithNotice(w, r, userID, form.Dragon, joinFieldErrors(FormatValidationError(err)))
		return
	}
	action, err := dragon.ParseAction(form.Action)
	if err != nil {
		h.careFailed(w, r, userID, form.Dragon, err)
		return
	}

	res, err := h.dragonSvc.Care(r.Context(), userID, form.Dragon, action)
	if err != nil {
		h.careFailed(w, r, userID, form.Dragon, err)
		return
	}

	log.Info("Care action applied", "dragon", form.Dragon, "action", action)
	h.rend.Page(w, r, http.StatusOK, "carefor", "Care for "+res.View.Species.Name, careNotice(action), res)
}

// careFailed shows game-rule failures on the care page and everything else via Fail
func (h *DragonHandler) careFailed(w http.ResponseWriter, r *http.Request, userID, name string, err error) {
	if kind, msg := classifyError(err); kind == kindNotice {
		h.renderWithNotice(w, r, userID, name, msg)
		return
	}
	h.rend.Fail(w, r, err)
}

// renderWithNotice re-reads the dragon so the page shows its current state
func (h *DragonHandler) renderWithNotice(w http.ResponseWriter, r *http.Request, userID, name, notice string) {
	res, err := h.dragonSvc.GetDragon(r.Context(), userID, name)
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Page(w, r, http.StatusOK, "carefor", "Care for "+res.View.Species.Name, notice, res)
}

func careNotice(a dragon.Action) string {
	switch a {
	case dragon.ActionFeed:
		return "Yum! Your dragon munches happily."
	case dragon.ActionPlay:
		return "Your dragon had a great time playing."
	case dragon.ActionMedicine:
		return "Your dragon is feeling better."
	}
	return ""
}
