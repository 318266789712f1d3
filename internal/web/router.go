package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lojf/ecaplanner/internal/handlers"
)

func Router(env *handlers.Env) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(env.Log))
	r.Use(middleware.Recoverer)

	// Public
	r.Get("/healthz", handlers.Health)
	r.Post("/session", handlers.SessionLogin(env))
	r.Post("/session/logout", handlers.SessionLogout)
	r.Get("/campuses", handlers.ListCampuses(env))
	r.Get("/campuses/{campus}/activities", handlers.CampusActivities(env))

	// Guardian-guarded
	r.Group(func(gr chi.Router) {
		gr.Use(handlers.RequireGuardian(env))

		gr.Get("/summary", handlers.FamilySummary(env))
		gr.Get("/summary.csv", handlers.FamilySummaryCSV(env))

		gr.Route("/children", func(cr chi.Router) {
			cr.Get("/", handlers.ListChildren(env))
			cr.Post("/", handlers.CreateChild(env))

			cr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", handlers.GetChild(env))
				ir.Put("/", handlers.UpdateChild(env))
				ir.Delete("/", handlers.DeleteChild(env))

				ir.Get("/board", handlers.ChildBoard(env))
				ir.Get("/cost", handlers.ChildCost(env))
				ir.Get("/summary", handlers.ChildSummary(env))
				ir.Get("/qr.png", handlers.ChildQR(env))

				ir.Post("/selections/{activityID}/toggle", handlers.ToggleSelection(env))
				ir.Delete("/selections", handlers.ResetSelection(env))
			})
		})
	})

	return r
}
