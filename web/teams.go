package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

type teamRequest struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Code           string `json:"code" validate:"required"`
	City           string `json:"city"`
	ColorPrimary   string `json:"colorPrimary"`
	ColorSecondary string `json:"colorSecondary"`
	Conference     string `json:"conference"`
	Division       string `json:"division"`
}

func (req *teamRequest) toModel() *model.Team {
	return &model.Team{
		ID:             req.ID,
		Name:           req.Name,
		Code:           req.Code,
		City:           req.City,
		ColorPrimary:   req.ColorPrimary,
		ColorSecondary: req.ColorSecondary,
		Conference:     req.Conference,
		Division:       req.Division,
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		team, err := ctrl.GetTeam(r.Context(), teamID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func upsertTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req teamRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveTeam(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if err := ctrl.DeleteTeam(r.Context(), teamID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
