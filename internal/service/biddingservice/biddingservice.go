package biddingservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/internal/pg"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

// casAttempts bounds the optimistic-commit retry loop. Transient contention
// usually resolves within a couple of attempts; past that the bidder gets
// ErrContested and decides for themself.
const casAttempts = 3

var (
	ErrInvalidAmount     = errors.New("bid amount must be positive")
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrOutsideTimeWindow = errors.New("auction is outside its bidding window")
	ErrNotRegistered     = errors.New("bidder is not registered for this auction")
	ErrBidTooLow         = errors.New("bid is below the minimum acceptable amount")
	ErrContested         = errors.New("bid lost the race to a concurrent bid")

	errCASLost = errors.New("high bid changed underneath the commit")
)

type AuctionRepo interface {
	GetByID(ctx context.Context, auctionID int) (*domain.Auction, error)
	UpdateHighBidCAS(ctx context.Context, auctionID int, expectedBid *int64, newBid int64, bidderID int) (bool, error)
}

type BidRepo interface {
	Insert(ctx context.Context, bid *domain.Bid) error
	History(ctx context.Context, auctionID int) ([]domain.Bid, error)
}

type RegistrationRepo interface {
	FindByAuctionAndUser(ctx context.Context, auctionID, userID int) (*domain.Registration, error)
}

// ProxyEvaluator is invoked synchronously after every accepted human bid. The
// full escalation chain completes before PlaceBid returns, so the caller
// always observes the settled high bid.
type ProxyEvaluator interface {
	OnNewHighBid(ctx context.Context, auctionID int, newHighBid int64, newHighBidder int)
}

type Service struct {
	auctionRepo AuctionRepo
	bidRepo     BidRepo
	regRepo     RegistrationRepo
	txManager   pg.TXManager
	clock       clock.Clock
	events      events.Publisher
	evaluator   ProxyEvaluator
}

func New(auctionRepo AuctionRepo, bidRepo BidRepo, regRepo RegistrationRepo, txManager pg.TXManager, clk clock.Clock, publisher events.Publisher) *Service {
	return &Service{
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		regRepo:     regRepo,
		txManager:   txManager,
		clock:       clk,
		events:      publisher,
	}
}

// SetEvaluator wires the proxy engine in after construction; the bidding core
// and the proxy engine call each other, so one side has to be attached late.
func (s *Service) SetEvaluator(evaluator ProxyEvaluator) {
	s.evaluator = evaluator
}

// BidResult reports the accepted bid and the fully-settled state after any
// proxy escalation triggered by it.
type BidResult struct {
	Bid          *domain.Bid
	FinalAmount  int64
	FinalBidder  int
	WasOutbid    bool
	OutbidAmount int64
}

// PlaceBid validates, commits and republishes a human bid, then runs the
// proxy evaluation pass to quiescence before returning.
func (s *Service) PlaceBid(ctx context.Context, auctionID, bidderID int, amount int64) (*BidResult, error) {
	bid, err := s.commit(ctx, auctionID, bidderID, amount, false)
	if err != nil {
		return nil, err
	}

	if s.evaluator != nil {
		s.evaluator.OnNewHighBid(ctx, auctionID, bid.Amount, bidderID)
	}

	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	result := &BidResult{
		Bid:         bid,
		FinalAmount: bid.Amount,
		FinalBidder: bidderID,
	}
	if auction != nil && auction.CurrentBid != nil && auction.CurrentBidder != nil {
		result.FinalAmount = *auction.CurrentBid
		result.FinalBidder = *auction.CurrentBidder
		if result.FinalBidder != bidderID {
			result.WasOutbid = true
			result.OutbidAmount = result.FinalAmount
		}
	}
	return result, nil
}

// PlaceProxyBid commits a counter-bid on behalf of a proxy holder. It does
// not re-enter evaluation: the escalation loop in the proxy engine owns the
// chain and its termination bound.
func (s *Service) PlaceProxyBid(ctx context.Context, auctionID, bidderID int, amount int64) (*domain.Bid, error) {
	return s.commit(ctx, auctionID, bidderID, amount, true)
}

func (s *Service) commit(ctx context.Context, auctionID, bidderID int, amount int64, isProxy bool) (*domain.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	for attempt := 1; attempt <= casAttempts; attempt++ {
		auction, err := s.auctionRepo.GetByID(ctx, auctionID)
		if err != nil {
			return nil, err
		}
		if auction == nil {
			return nil, ErrAuctionNotFound
		}
		if auction.Status != domain.StatusActive {
			return nil, ErrAuctionNotActive
		}

		now := s.clock.Now()
		if now.Before(auction.StartTime) {
			return nil, ErrOutsideTimeWindow
		}
		if auction.EndTime != nil && !now.Before(*auction.EndTime) {
			return nil, ErrOutsideTimeWindow
		}

		reg, err := s.regRepo.FindByAuctionAndUser(ctx, auctionID, bidderID)
		if err != nil {
			return nil, err
		}
		if reg == nil || reg.PaymentStatus != domain.PaymentPaid {
			return nil, ErrNotRegistered
		}

		if amount < auction.MinAcceptable() {
			return nil, fmt.Errorf("%w: minimum is %d", ErrBidTooLow, auction.MinAcceptable())
		}

		bid := &domain.Bid{
			ID:        uuid.NewString(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			IsProxy:   isProxy,
			PlacedAt:  now,
		}

		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.bidRepo.Insert(ctx, bid); err != nil {
				return err
			}
			ok, err := s.auctionRepo.UpdateHighBidCAS(ctx, auctionID, auction.CurrentBid, amount, bidderID)
			if err != nil {
				return err
			}
			if !ok {
				// Rolling back discards the bid row; the retry re-reads
				// and re-validates against whatever landed first.
				return errCASLost
			}
			return nil
		})
		if errors.Is(err, errCASLost) {
			zap.L().Info("bid commit contested, retrying",
				zap.Int("auctionID", auctionID),
				zap.Int("bidderID", bidderID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			zap.L().Error("failed to commit bid", zap.Error(err))
			return nil, err
		}

		s.publishBidEvents(auction, bid)
		return bid, nil
	}

	return nil, ErrContested
}

func (s *Service) publishBidEvents(prev *domain.Auction, bid *domain.Bid) {
	highEvent := events.New(events.TypeNewHighBid, bid.AuctionID)
	highEvent.NewHighBid = &events.NewHighBidPayload{
		BidderID: bid.BidderID,
		Amount:   bid.Amount,
		IsProxy:  bid.IsProxy,
	}
	s.events.Publish(highEvent)

	if prev.CurrentBidder != nil && *prev.CurrentBidder != bid.BidderID {
		outbid := events.New(events.TypeOutbid, bid.AuctionID)
		outbid.Outbid = &events.OutbidPayload{
			PreviousBidder: *prev.CurrentBidder,
			PreviousAmount: *prev.CurrentBid,
			NewAmount:      bid.Amount,
		}
		s.events.Publish(outbid)
	}
}

// GetCurrentHighBid returns the settled high bid, or ok=false when no bid
// has been accepted yet.
func (s *Service) GetCurrentHighBid(ctx context.Context, auctionID int) (int64, int, bool, error) {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return 0, 0, false, err
	}
	if auction == nil {
		return 0, 0, false, ErrAuctionNotFound
	}
	if auction.CurrentBid == nil || auction.CurrentBidder == nil {
		return 0, 0, false, nil
	}
	return *auction.CurrentBid, *auction.CurrentBidder, true, nil
}

// GetBidHistory returns the auction's ledger, oldest to newest.
func (s *Service) GetBidHistory(ctx context.Context, auctionID int) ([]domain.Bid, error) {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	return s.bidRepo.History(ctx, auctionID)
}
