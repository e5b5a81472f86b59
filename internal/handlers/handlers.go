package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/khesal1978-cpu/siku/docs"
	gameshandlers "github.com/khesal1978-cpu/siku/internal/handlers/games"
	mininghandlers "github.com/khesal1978-cpu/siku/internal/handlers/mining"
	profilehandlers "github.com/khesal1978-cpu/siku/internal/handlers/profile"
	"github.com/khesal1978-cpu/siku/internal/service"
	"github.com/khesal1978-cpu/siku/pkg/auth"
)

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type MiningHandler interface {
	GetSession(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
}

type GamesHandler interface {
	CanSpin(w http.ResponseWriter, r *http.Request)
	Spin(w http.ResponseWriter, r *http.Request)
	GetScratchCards(w http.ResponseWriter, r *http.Request)
	NewScratchCard(w http.ResponseWriter, r *http.Request)
	Scratch(w http.ResponseWriter, r *http.Request)
	GetAchievements(w http.ResponseWriter, r *http.Request)
	ClaimAchievement(w http.ResponseWriter, r *http.Request)
	GetBoosts(w http.ResponseWriter, r *http.Request)
	ActivateBoost(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProfileHandler ProfileHandler
	MiningHandler  MiningHandler
	GamesHandler   GamesHandler

	ws       http.Handler
	verifier auth.TokenVerifier
}

// New builds the handler set. ws serves the realtime endpoint; verifier is
// optional, routes stay open when it is nil.
func New(s *service.Services, ws http.Handler, verifier auth.TokenVerifier) *Handlers {
	return &Handlers{
		ProfileHandler: profilehandlers.New(s.ProfileService, s.LedgerService),
		MiningHandler:  mininghandlers.New(s.MiningService),
		GamesHandler:   gameshandlers.New(s.GameService),
		ws:             ws,
		verifier:       verifier,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/ws", h.ws)
	r.Route("/api", func(r chi.Router) {
		if h.verifier != nil {
			r.Use(auth.Middleware(h.verifier))
		}
		r.Get("/profile/{userId}", auth.RequireOwner(h.ProfileHandler.GetProfile))
		r.Get("/transactions/{userId}", auth.RequireOwner(h.ProfileHandler.GetTransactions))

		r.Route("/mining", func(r chi.Router) {
			r.Get("/{userId}", auth.RequireOwner(h.MiningHandler.GetSession))
			r.Post("/start/{userId}", auth.RequireOwner(h.MiningHandler.Start))
			r.Post("/claim/{userId}", auth.RequireOwner(h.MiningHandler.Claim))
		})

		r.Get("/spin/can-spin/{userId}", auth.RequireOwner(h.GamesHandler.CanSpin))
		r.Post("/spin/{userId}", auth.RequireOwner(h.GamesHandler.Spin))

		r.Get("/scratch-cards/{userId}", auth.RequireOwner(h.GamesHandler.GetScratchCards))
		r.Post("/scratch-card/new/{userId}", auth.RequireOwner(h.GamesHandler.NewScratchCard))
		r.Post("/scratch-card/{cardId}", h.GamesHandler.Scratch)

		r.Get("/achievements/{userId}", auth.RequireOwner(h.GamesHandler.GetAchievements))
		r.Post("/achievement/{achievementId}/claim", h.GamesHandler.ClaimAchievement)

		r.Get("/boosts/{userId}", auth.RequireOwner(h.GamesHandler.GetBoosts))
		r.Post("/boost/activate/{userId}", auth.RequireOwner(h.GamesHandler.ActivateBoost))
	})

	return r
}
