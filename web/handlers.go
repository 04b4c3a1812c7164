package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/db"
	"github.com/unrolled/render"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// decodeAndValidate unmarshals the request body into v and runs its validate
// tags. Any failure maps to a 400.
func decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// renderError maps the error taxonomy to status codes: missing records are
// 404s, validation/capacity/upload problems are 400s, everything else is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrTemplateNotFound),
		errors.Is(err, db.ErrBinderNotFound),
		errors.Is(err, db.ErrTeamNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrRookiePageLimit),
		errors.Is(err, controller.ErrInvalidImage),
		errors.Is(err, controller.ErrInvalidValues):
		status = http.StatusBadRequest
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func renderBadRequest(render *render.Render, w http.ResponseWriter, err error) {
	render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func renderCreated(render *render.Render, w http.ResponseWriter) {
	render.JSON(w, http.StatusCreated, okResponse{OK: true})
}

func renderOK(render *render.Render, w http.ResponseWriter) {
	render.JSON(w, http.StatusOK, okResponse{OK: true})
}
