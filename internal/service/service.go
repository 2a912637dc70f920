package service

import (
	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/internal/handlers/auctions"
	"github.com/veldmarket/auction-engine/internal/handlers/bids"
	"github.com/veldmarket/auction-engine/internal/handlers/proxy"
	"github.com/veldmarket/auction-engine/internal/handlers/registration"
	"github.com/veldmarket/auction-engine/internal/handlers/watchlist"
	"github.com/veldmarket/auction-engine/internal/pg"
	"github.com/veldmarket/auction-engine/internal/repo"
	auctionservice "github.com/veldmarket/auction-engine/internal/service/auctionservice"
	biddingservice "github.com/veldmarket/auction-engine/internal/service/biddingservice"
	proxyservice "github.com/veldmarket/auction-engine/internal/service/proxyservice"
	registrationservice "github.com/veldmarket/auction-engine/internal/service/registrationservice"
	watchservice "github.com/veldmarket/auction-engine/internal/service/watchservice"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

type Services struct {
	AuctionService      auctions.Service
	BiddingService      bids.Service
	ProxyService        proxy.Service
	RegistrationService registration.Service
	WatchService        watchlist.Service

	// Lifecycle drives the scheduler's timed transitions; it is the same
	// object as AuctionService under its concrete type.
	Lifecycle *auctionservice.Service

	// Notifier resolves event recipients for the delivery transports; it is
	// the same object as WatchService under its concrete type.
	Notifier *watchservice.Service
}

// New wires the services together. The bidding core and the proxy engine
// reference each other (a bid triggers evaluation, evaluation places bids),
// so the evaluator is attached after construction.
func New(repo *repo.Repositories, txManager pg.TXManager, publisher events.Publisher, clk clock.Clock) *Services {
	biddingService := biddingservice.New(repo.AuctionRepo, repo.BidRepo, repo.RegistrationRepo, txManager, clk, publisher)
	proxyService := proxyservice.New(repo.ProxyBidRepo, repo.AuctionRepo, biddingService)
	biddingService.SetEvaluator(proxyService)

	auctionService := auctionservice.New(repo.AuctionRepo, repo.RegistrationRepo, publisher, clk)
	auctionService.SetEvaluator(proxyService)

	registrationService := registrationservice.New(repo.RegistrationRepo, repo.AuctionRepo)
	watchService := watchservice.New(repo.WatchlistRepo, repo.AuctionRepo)

	return &Services{
		AuctionService:      auctionService,
		BiddingService:      biddingService,
		ProxyService:        proxyService,
		RegistrationService: registrationService,
		WatchService:        watchService,
		Lifecycle:           auctionService,
		Notifier:            watchService,
	}
}
