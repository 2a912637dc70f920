package repo

import (
	"github.com/veldmarket/auction-engine/internal/pg"
	auctionrepo "github.com/veldmarket/auction-engine/internal/repo/auction-repo"
	bidrepo "github.com/veldmarket/auction-engine/internal/repo/bid-repo"
	proxybidrepo "github.com/veldmarket/auction-engine/internal/repo/proxybid-repo"
	registrationrepo "github.com/veldmarket/auction-engine/internal/repo/registration-repo"
	watchlistrepo "github.com/veldmarket/auction-engine/internal/repo/watchlist-repo"
)

type Repositories struct {
	AuctionRepo      *auctionrepo.Repository
	BidRepo          *bidrepo.Repository
	RegistrationRepo *registrationrepo.Repository
	ProxyBidRepo     *proxybidrepo.Repository
	WatchlistRepo    *watchlistrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AuctionRepo:      auctionrepo.New(conn, txManager),
		BidRepo:          bidrepo.New(conn),
		RegistrationRepo: registrationrepo.New(conn),
		ProxyBidRepo:     proxybidrepo.New(conn),
		WatchlistRepo:    watchlistrepo.New(conn),
	}
}
