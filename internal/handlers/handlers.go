package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/veldmarket/auction-engine/docs"
	"github.com/veldmarket/auction-engine/internal/config"
	"github.com/veldmarket/auction-engine/internal/events"
	auctionhandlers "github.com/veldmarket/auction-engine/internal/handlers/auctions"
	bidhandlers "github.com/veldmarket/auction-engine/internal/handlers/bids"
	proxyhandlers "github.com/veldmarket/auction-engine/internal/handlers/proxy"
	registrationhandlers "github.com/veldmarket/auction-engine/internal/handlers/registration"
	streamhandlers "github.com/veldmarket/auction-engine/internal/handlers/stream"
	watchlisthandlers "github.com/veldmarket/auction-engine/internal/handlers/watchlist"
	"github.com/veldmarket/auction-engine/internal/service"
	"github.com/veldmarket/auction-engine/pkg/auth"
)

type AuctionHandler interface {
	CreateAuction(w http.ResponseWriter, r *http.Request)
	GetAuction(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type BidHandler interface {
	PlaceBid(w http.ResponseWriter, r *http.Request)
	GetHighBid(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type ProxyHandler interface {
	SetProxyBid(w http.ResponseWriter, r *http.Request)
	GetProxyBid(w http.ResponseWriter, r *http.Request)
	PauseProxyBid(w http.ResponseWriter, r *http.Request)
	ResumeProxyBid(w http.ResponseWriter, r *http.Request)
	CancelProxyBid(w http.ResponseWriter, r *http.Request)
}

type RegistrationHandler interface {
	ConfirmFee(w http.ResponseWriter, r *http.Request)
	MyRegistrations(w http.ResponseWriter, r *http.Request)
}

type WatchlistHandler interface {
	Watch(w http.ResponseWriter, r *http.Request)
	Unwatch(w http.ResponseWriter, r *http.Request)
}

type StreamHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuctionHandler      AuctionHandler
	BidHandler          BidHandler
	ProxyHandler        ProxyHandler
	RegistrationHandler RegistrationHandler
	WatchlistHandler    WatchlistHandler
	StreamHandler       StreamHandler

	jwtService  auth.JWTServiceInterface
	keyVerifier auth.KeyVerifierInterface
	adminKey    string
}

func New(s *service.Services, cfg *config.Config, bus *events.Bus, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuctionHandler:      auctionhandlers.New(s.AuctionService),
		BidHandler:          bidhandlers.New(s.BiddingService, cfg.BidRatePerSec, cfg.BidRateBurst),
		ProxyHandler:        proxyhandlers.New(s.ProxyService),
		RegistrationHandler: registrationhandlers.New(s.RegistrationService),
		WatchlistHandler:    watchlisthandlers.New(s.WatchService),
		StreamHandler:       streamhandlers.New(bus, s.Notifier),
		jwtService:          jwtService,
		keyVerifier:         &auth.KeyVerifier{},
		adminKey:            cfg.AdminKeyHash,
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

	r.Route("/api/auctions", func(r chi.Router) {
		r.Get("/{auctionID}", h.AuctionHandler.GetAuction)
		r.Get("/{auctionID}/bids", h.BidHandler.GetHistory)
		r.Get("/{auctionID}/bids/high", h.BidHandler.GetHighBid)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Post("/", h.AuctionHandler.CreateAuction)
			r.Post("/{auctionID}/bids", h.BidHandler.PlaceBid)

			r.Route("/{auctionID}/proxy", func(r chi.Router) {
				r.Put("/", h.ProxyHandler.SetProxyBid)
				r.Get("/", h.ProxyHandler.GetProxyBid)
				r.Delete("/", h.ProxyHandler.CancelProxyBid)
				r.Post("/pause", h.ProxyHandler.PauseProxyBid)
				r.Post("/resume", h.ProxyHandler.ResumeProxyBid)
			})

			r.Post("/{auctionID}/watch", h.WatchlistHandler.Watch)
			r.Delete("/{auctionID}/watch", h.WatchlistHandler.Unwatch)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))
		r.Get("/api/stream", h.StreamHandler.Stream)
		r.Get("/api/registrations", h.RegistrationHandler.MyRegistrations)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AdminMiddleware(h.keyVerifier, h.adminKey))
		r.Post("/api/registrations/confirm", h.RegistrationHandler.ConfirmFee)
		r.Post("/api/admin/auctions/{auctionID}/approve", h.AuctionHandler.Approve)
		r.Post("/api/admin/auctions/{auctionID}/reject", h.AuctionHandler.Reject)
		r.Post("/api/admin/auctions/{auctionID}/cancel", h.AuctionHandler.Cancel)
	})

	return r
}
