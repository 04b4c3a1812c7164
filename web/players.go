package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

// playerRequest is the upsert payload. The flag fields are pointers so that
// "required" means present, while still accepting the loose encodings
// model.Flag tolerates.
type playerRequest struct {
	ID              string      `json:"id" validate:"required"`
	Name            string      `json:"name" validate:"required"`
	Team            string      `json:"team" validate:"required"`
	Position        string      `json:"position" validate:"required"`
	Colleges        []string    `json:"colleges" validate:"required"`
	DraftYear       *int        `json:"draftYear"`
	DraftPick       *int        `json:"draftPick"`
	IsPlayer        *model.Flag `json:"isPlayer" validate:"required"`
	IsBrownsStarter *model.Flag `json:"isBrownsStarter" validate:"required"`
	Notes           string      `json:"notes"`
	TemplateID      string      `json:"templateId"`
}

func (req *playerRequest) toModel() *model.Player {
	return &model.Player{
		ID:              req.ID,
		Name:            req.Name,
		Team:            model.ParseTeam(req.Team),
		Position:        model.ParsePosition(req.Position),
		Colleges:        req.Colleges,
		DraftYear:       req.DraftYear,
		DraftPick:       req.DraftPick,
		IsPlayer:        req.IsPlayer.Bool(),
		IsBrownsStarter: req.IsBrownsStarter.Bool(),
		Notes:           req.Notes,
		TemplateID:      req.TemplateID,
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func upsertPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SavePlayer(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		if err := ctrl.DeletePlayer(r.Context(), playerID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
