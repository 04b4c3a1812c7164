package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/card_binder/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", listPlayersHandler(ctrl, render))
			r.Post("/", upsertPlayerHandler(ctrl, render))
			r.Get("/{playerID}", getPlayerHandler(ctrl, render))
			r.Delete("/{playerID}", deletePlayerHandler(ctrl, render))
			r.Get("/{playerID}/games", listPlayerGamesHandler(ctrl, render))
			r.Get("/{playerID}/sheets", listPlayerSheetsHandler(ctrl, render))
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/", upsertGameHandler(ctrl, render))
			r.Delete("/{gameID}", deleteGameHandler(ctrl, render))
		})

		r.Route("/sheets", func(r chi.Router) {
			r.Get("/", listSheetsHandler(ctrl, render))
			r.Post("/", upsertSheetHandler(ctrl, render))
			r.Delete("/{sheetID}", deleteSheetHandler(ctrl, render))
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", listTemplatesHandler(ctrl, render))
			r.Post("/", upsertTemplateHandler(ctrl, render))
			r.Get("/{templateID}", getTemplateHandler(ctrl, render))
			r.Delete("/{templateID}", deleteTemplateHandler(ctrl, render))
		})

		r.Route("/binders", func(r chi.Router) {
			r.Get("/", listBindersHandler(ctrl, render))
			r.Post("/", upsertBinderHandler(ctrl, render))
			r.Get("/{binderID}", getBinderHandler(ctrl, render))
		})

		r.Route("/binderPages", func(r chi.Router) {
			r.Get("/", listBinderPagesHandler(ctrl, render))
			r.Post("/", upsertBinderPageHandler(ctrl, render))
			r.Delete("/{pageID}", deleteBinderPageHandler(ctrl, render))
		})

		r.Route("/binderPageTemplates", func(r chi.Router) {
			r.Get("/", listBinderPageTemplatesHandler(ctrl, render))
			r.Post("/", upsertBinderPageTemplateHandler(ctrl, render))
			r.Put("/{templateID}", upsertBinderPageTemplateHandler(ctrl, render))
			r.Delete("/{templateID}", deleteBinderPageTemplateHandler(ctrl, render))
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", listTeamsHandler(ctrl, render))
			r.Post("/", upsertTeamHandler(ctrl, render))
			r.Get("/{teamID}", getTeamHandler(ctrl, render))
			r.Put("/{teamID}", upsertTeamHandler(ctrl, render))
			r.Delete("/{teamID}", deleteTeamHandler(ctrl, render))
		})

		r.Route("/meta", func(r chi.Router) {
			r.Get("/teams", metaTeamsHandler(ctrl, render))
			r.Get("/positions", metaPositionsHandler(ctrl, render))
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/teamHelmet", uploadTeamHelmetHandler(ctrl, render))
			r.Post("/playerPhoto", uploadPlayerPhotoHandler(ctrl, render))
			r.Post("/binderCover", uploadBinderCoverHandler(ctrl, render))
		})

		r.Get("/stats", statsHandler(ctrl, render))
		r.Get("/export", exportHandler(ctrl, render))
		r.Post("/import", importHandler(ctrl, render))

		r.Route("/admin", func(r chi.Router) {
			// Seeding can insert a few dozen rows, give it a longer timeout.
			r.Use(middleware.Timeout(30 * time.Second))
			r.Post("/seed/draft2025", seedDraftHandler(ctrl, render))
		})
	})

	// Uploaded images are served statically from the uploads directory.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	return r
}
