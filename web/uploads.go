package web

import (
	"net/http"

	"github.com/mww/card_binder/controller"
	"github.com/unrolled/render"
)

type uploadResponse struct {
	URL string `json:"url"`
}

type teamHelmetUpload struct {
	Abbr  string `json:"abbr" validate:"required"`
	Image string `json:"image" validate:"required"`
}

type playerPhotoUpload struct {
	PlayerID string `json:"playerId" validate:"required"`
	Image    string `json:"image" validate:"required"`
}

type binderCoverUpload struct {
	BinderID string `json:"binderId" validate:"required"`
	Image    string `json:"image" validate:"required"`
}

func uploadTeamHelmetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req teamHelmetUpload
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		url, err := ctrl.UploadTeamHelmet(r.Context(), req.Abbr, req.Image)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, uploadResponse{URL: url})
	}
}

func uploadPlayerPhotoHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerPhotoUpload
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		url, err := ctrl.UploadPlayerPhoto(r.Context(), req.PlayerID, req.Image)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, uploadResponse{URL: url})
	}
}

func uploadBinderCoverHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req binderCoverUpload
		if err := decodeAndValidate(r, &req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		url, err := ctrl.UploadBinderCover(r.Context(), req.BinderID, req.Image)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, uploadResponse{URL: url})
	}
}
