package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

type binderRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Year      *int   `json:"year"`
	PageCount *int   `json:"pageCount"`
	PageSize  int    `json:"pageSize"`
}

func (req *binderRequest) toModel() *model.Binder {
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = model.DefaultPageSize
	}
	return &model.Binder{
		ID:        req.ID,
		Name:      req.Name,
		Year:      req.Year,
		PageCount: req.PageCount,
		PageSize:  pageSize,
	}
}

type binderPageRequest struct {
	ID       string       `json:"id" validate:"required"`
	Type     string       `json:"type" validate:"required,oneof=Rookie Browns Extra"`
	BinderID string       `json:"binderId"`
	PlayerID string       `json:"playerId"`
	Slots    []model.Slot `json:"slots" validate:"required"`
}

func (req *binderPageRequest) toModel() *model.BinderPage {
	return &model.BinderPage{
		ID:       req.ID,
		Type:     model.BinderPageType(req.Type),
		BinderID: req.BinderID,
		PlayerID: req.PlayerID,
		Slots:    req.Slots,
	}
}

type binderPageTemplateRequest struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Rows         *int    `json:"rows" validate:"required"`
	Cols         *int    `json:"cols" validate:"required"`
	Orientation  string  `json:"orientation" validate:"required,oneof=portrait landscape"`
	Unit         string  `json:"unit" validate:"required,oneof=in mm"`
	SlotWidth    float64 `json:"slotWidth" validate:"required"`
	SlotHeight   float64 `json:"slotHeight" validate:"required"`
	MarginTop    float64 `json:"marginTop"`
	MarginRight  float64 `json:"marginRight"`
	MarginBottom float64 `json:"marginBottom"`
	MarginLeft   float64 `json:"marginLeft"`
	GutterX      float64 `json:"gutterX"`
	GutterY      float64 `json:"gutterY"`
}

func (req *binderPageTemplateRequest) toModel() *model.BinderPageTemplate {
	return &model.BinderPageTemplate{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Rows:         *req.Rows,
		Cols:         *req.Cols,
		Orientation:  req.Orientation,
		Unit:         req.Unit,
		SlotWidth:    req.SlotWidth,
		SlotHeight:   req.SlotHeight,
		MarginTop:    req.MarginTop,
		MarginRight:  req.MarginRight,
		MarginBottom: req.MarginBottom,
		MarginLeft:   req.MarginLeft,
		GutterX:      req.GutterX,
		GutterY:      req.GutterY,
	}
}

func listBindersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		binders, err := ctrl.ListBinders(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, binders)
	}
}

func getBinderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		binderID := chi.URLParam(r, "binderID")
		b, err := ctrl.GetBinder(r.Context(), binderID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, b)
	}
}

func upsertBinderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req binderRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveBinder(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func listBinderPagesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := ctrl.ListBinderPages(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, pages)
	}
}

func upsertBinderPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req binderPageRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveBinderPage(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteBinderPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := chi.URLParam(r, "pageID")
		if err := ctrl.DeleteBinderPage(r.Context(), pageID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}

func listBinderPageTemplatesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := ctrl.ListBinderPageTemplates(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, templates)
	}
}

func upsertBinderPageTemplateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req binderPageTemplateRequest
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SaveBinderPageTemplate(r.Context(), req.toModel()); err != nil {
			renderError(render, w, err)
			return
		}
		renderCreated(render, w)
	}
}

func deleteBinderPageTemplateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")
		if err := ctrl.DeleteBinderPageTemplate(r.Context(), templateID); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}
