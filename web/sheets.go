package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

type sheetRequest struct {
	ID         string           `json:"id"`
	PlayerID   string           `json:"playerId" validate:"required"`
	TemplateID string           `json:"templateId" validate:"required"`
	SeasonYear *int             `json:"seasonYear" validate:"required"`
	Values     model.StatValues `json:"values" validate:"required"`
}

func (req *sheetRequest) toModel() *model.Sheet {
	return &model.Sheet{
		ID:         req.ID,
		PlayerID:   req.PlayerID,
		TemplateID: req.TemplateID,
		SeasonYear: *req.SeasonYear,
		Values:     req.Values,
	}
}

func listSheetsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, err := ctrl.ListSheets(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, sheets)
	}
}

func listPlayerSheetsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		sheets, err := ctrl.ListSheetsForPlayer(r.Context(), playerID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, sheets)
	}
}

func upsertSheetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sheetRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveSheet(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteSheetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "sheetID")
		if err := ctrl.DeleteSheet(r.Context(), sheetID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
