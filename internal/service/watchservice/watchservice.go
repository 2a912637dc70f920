package watchservice

import (
	"context"
	"errors"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/events"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNotWatching     = errors.New("user is not watching this auction")
)

type WatchlistRepo interface {
	Add(ctx context.Context, entry *domain.WatchlistEntry) error
	Remove(ctx context.Context, auctionID, userID int) (bool, error)
	FindByAuction(ctx context.Context, auctionID int) ([]domain.WatchlistEntry, error)
}

type AuctionRepo interface {
	GetByID(ctx context.Context, auctionID int) (*domain.Auction, error)
}

type Service struct {
	watchRepo   WatchlistRepo
	auctionRepo AuctionRepo
}

func New(watchRepo WatchlistRepo, auctionRepo AuctionRepo) *Service {
	return &Service{
		watchRepo:   watchRepo,
		auctionRepo: auctionRepo,
	}
}

func (s *Service) Watch(ctx context.Context, auctionID, userID int, notifyOutbid, notifyStatus bool) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	return s.watchRepo.Add(ctx, &domain.WatchlistEntry{
		AuctionID:    auctionID,
		UserID:       userID,
		NotifyOutbid: notifyOutbid,
		NotifyStatus: notifyStatus,
	})
}

func (s *Service) Unwatch(ctx context.Context, auctionID, userID int) error {
	ok, err := s.watchRepo.Remove(ctx, auctionID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotWatching
	}
	return nil
}

// TargetsFor resolves which users should be notified of an event. Outbid
// events go to the displaced bidder plus watchers who opted in; status and
// terminal events go to status watchers. High-bid events carry no personal
// targeting and fan out to every watcher.
func (s *Service) TargetsFor(ctx context.Context, e events.Event) ([]int, error) {
	entries, err := s.watchRepo.FindByAuction(ctx, e.AuctionID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var targets []int
	add := func(userID int) {
		if !seen[userID] {
			seen[userID] = true
			targets = append(targets, userID)
		}
	}

	switch e.Type {
	case events.TypeOutbid:
		if e.Outbid != nil {
			add(e.Outbid.PreviousBidder)
		}
		for _, entry := range entries {
			if entry.NotifyOutbid {
				add(entry.UserID)
			}
		}
	case events.TypeStatusChanged, events.TypeAuctionWon, events.TypeSettlement:
		if e.Type == events.TypeAuctionWon && e.AuctionWon != nil {
			add(e.AuctionWon.WinnerID)
		}
		for _, entry := range entries {
			if entry.NotifyStatus {
				add(entry.UserID)
			}
		}
	default:
		for _, entry := range entries {
			add(entry.UserID)
		}
	}
	return targets, nil
}
