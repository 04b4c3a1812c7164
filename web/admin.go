package web

import (
	"net/http"

	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/model"
	"github.com/unrolled/render"
)

func exportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := ctrl.Export(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, data)
	}
}

func importHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data model.Export
		if err := decodeAndValidate(r, &data); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.Import(r.Context(), &data); err != nil {
			renderError(render, w, err)
			return
		}
		renderOK(render, w)
	}
}

func seedDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.SeedDraftClass(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}
