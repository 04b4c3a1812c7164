package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

type gameRequest struct {
	ID           string           `json:"id"`
	PlayerID     string           `json:"playerId" validate:"required"`
	TemplateID   string           `json:"templateId" validate:"required"`
	Date         string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	IsBye        *model.Flag      `json:"isBye" validate:"required"`
	OpponentAbbr string           `json:"opponentAbbr"`
	TeamScore    *int             `json:"teamScore"`
	OppScore     *int             `json:"oppScore"`
	Values       model.StatValues `json:"values"`
}

func (req *gameRequest) toModel() *model.Game {
	values := req.Values
	if values == nil {
		values = model.StatValues{}
	}
	return &model.Game{
		ID:           req.ID,
		PlayerID:     req.PlayerID,
		TemplateID:   req.TemplateID,
		Date:         req.Date,
		IsBye:        req.IsBye.Bool(),
		OpponentAbbr: req.OpponentAbbr,
		TeamScore:    req.TeamScore,
		OppScore:     req.OppScore,
		Values:       values,
	}
}

func listPlayerGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		games, err := ctrl.ListGamesForPlayer(r.Context(), playerID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func upsertGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveGame(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		if err := ctrl.DeleteGame(r.Context(), gameID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
