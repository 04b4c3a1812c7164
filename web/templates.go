package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

type statLineRequest struct {
	Key         string      `json:"key" validate:"required"`
	Label       string      `json:"label" validate:"required"`
	Type        string      `json:"type" validate:"required,oneof=number text calc"`
	Formula     string      `json:"formula"`
	PerGame     *model.Flag `json:"perGame"`
	Order       *int        `json:"order" validate:"required"`
	Description string      `json:"description"`
}

type templateRequest struct {
	ID        string            `json:"id" validate:"required"`
	Name      string            `json:"name" validate:"required"`
	Position  string            `json:"position" validate:"required"`
	StatLines []statLineRequest `json:"statLines" validate:"required,dive"`
}

func (req *templateRequest) toModel() *model.Template {
	lines := make([]model.StatLineDef, 0, len(req.StatLines))
	for _, sl := range req.StatLines {
		perGame := false
		if sl.PerGame != nil {
			perGame = sl.PerGame.Bool()
		}
		lines = append(lines, model.StatLineDef{
			Key:         sl.Key,
			Label:       sl.Label,
			Type:        model.StatType(sl.Type),
			Formula:     sl.Formula,
			PerGame:     perGame,
			Order:       *sl.Order,
			Description: sl.Description,
		})
	}
	return &model.Template{
		ID:        req.ID,
		Name:      req.Name,
		Position:  req.Position,
		StatLines: lines,
	}
}

func listTemplatesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := ctrl.ListTemplates(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, templates)
	}
}

func getTemplateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")
		t, err := ctrl.GetTemplate(r.Context(), templateID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, t)
	}
}

func upsertTemplateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req templateRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveTemplate(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteTemplateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")
		if err := ctrl.DeleteTemplate(r.Context(), templateID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
