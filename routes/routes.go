package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/tournament-engine/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	tournamentHandler *handlers.TournamentHandler,
	drawHandler *handlers.DrawHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// The websocket route stays outside the timeout so subscriptions live on.
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.ListTournaments)
			r.Post("/", tournamentHandler.CreateTournament)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", tournamentHandler.GetTournament)
				r.Delete("/", tournamentHandler.DeleteTournament)

				r.Post("/teams", tournamentHandler.AddTeam)
				r.Delete("/teams/{teamID}", tournamentHandler.RemoveTeam)

				r.Post("/generate", tournamentHandler.Generate)
				r.Put("/matches/{matchID}/result", tournamentHandler.RecordResult)
				r.Get("/standings", tournamentHandler.Standings)
				r.Post("/advance", tournamentHandler.AdvanceKnockout)
				r.Post("/export", tournamentHandler.ExportReport)
			})
		})

		r.Post("/draws", drawHandler.DrawTeams)
	})
}
