package proxyservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionClosed   = errors.New("auction no longer accepts proxy bids")
	ErrProxyTooLow     = errors.New("proxy maximum is below the minimum acceptable bid")
	ErrProxyNotFound   = errors.New("proxy bid not found")
)

type ProxyRepo interface {
	Upsert(ctx context.Context, proxy *domain.ProxyBid) (*domain.ProxyBid, error)
	SetActive(ctx context.Context, auctionID, userID int, active bool) (bool, error)
	Delete(ctx context.Context, auctionID, userID int) (bool, error)
	FindByAuctionAndUser(ctx context.Context, auctionID, userID int) (*domain.ProxyBid, error)
	FindActiveByAuction(ctx context.Context, auctionID int) ([]domain.ProxyBid, error)
}

type AuctionRepo interface {
	GetByID(ctx context.Context, auctionID int) (*domain.Auction, error)
}

// BidPlacer injects counter-bids through the bidding core, so proxy bids run
// the exact same validation and compare-and-set commit as human ones.
type BidPlacer interface {
	PlaceProxyBid(ctx context.Context, auctionID, bidderID int, amount int64) (*domain.Bid, error)
}

type Service struct {
	proxyRepo   ProxyRepo
	auctionRepo AuctionRepo
	placer      BidPlacer
}

func New(proxyRepo ProxyRepo, auctionRepo AuctionRepo, placer BidPlacer) *Service {
	return &Service{
		proxyRepo:   proxyRepo,
		auctionRepo: auctionRepo,
		placer:      placer,
	}
}

// SetProxyBid creates or replaces the user's standing maximum. Lowering the
// maximum below the live high bid never retracts bids already on the ledger;
// it only stops protecting the user from here on. Only a proxy entering the
// auction — newly created or reactivated by the call — must clear the ladder.
func (s *Service) SetProxyBid(ctx context.Context, auctionID, userID int, maxAmount int64) (*domain.ProxyBid, error) {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	if isTerminal(auction.Status) {
		return nil, ErrAuctionClosed
	}
	existing, err := s.proxyRepo.FindByAuctionAndUser(ctx, auctionID, userID)
	if err != nil {
		return nil, err
	}
	if (existing == nil || !existing.Active) && maxAmount < auction.MinAcceptable() {
		return nil, fmt.Errorf("%w: minimum is %d", ErrProxyTooLow, auction.MinAcceptable())
	}

	saved, err := s.proxyRepo.Upsert(ctx, &domain.ProxyBid{
		AuctionID: auctionID,
		UserID:    userID,
		MaxAmount: maxAmount,
	})
	if err != nil {
		return nil, err
	}

	// A freshly set proxy may immediately have to counter the standing high
	// bid.
	if auction.Status == domain.StatusActive {
		s.EvaluateAuction(ctx, auctionID)
	}
	return saved, nil
}

// PauseProxyBid keeps the record but removes it from future evaluation.
func (s *Service) PauseProxyBid(ctx context.Context, auctionID, userID int) error {
	ok, err := s.proxyRepo.SetActive(ctx, auctionID, userID, false)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProxyNotFound
	}
	return nil
}

// ResumeProxyBid reactivates a paused proxy; like setting one, the maximum
// must clear the current ladder at the moment of reactivation.
func (s *Service) ResumeProxyBid(ctx context.Context, auctionID, userID int) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	if isTerminal(auction.Status) {
		return ErrAuctionClosed
	}

	proxy, err := s.proxyRepo.FindByAuctionAndUser(ctx, auctionID, userID)
	if err != nil {
		return err
	}
	if proxy == nil {
		return ErrProxyNotFound
	}
	if proxy.MaxAmount < auction.MinAcceptable() {
		return fmt.Errorf("%w: minimum is %d", ErrProxyTooLow, auction.MinAcceptable())
	}

	if _, err := s.proxyRepo.SetActive(ctx, auctionID, userID, true); err != nil {
		return err
	}

	if auction.Status == domain.StatusActive {
		s.EvaluateAuction(ctx, auctionID)
	}
	return nil
}

func (s *Service) CancelProxyBid(ctx context.Context, auctionID, userID int) error {
	ok, err := s.proxyRepo.Delete(ctx, auctionID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProxyNotFound
	}
	return nil
}

func (s *Service) GetProxyBid(ctx context.Context, auctionID, userID int) (*domain.ProxyBid, error) {
	proxy, err := s.proxyRepo.FindByAuctionAndUser(ctx, auctionID, userID)
	if err != nil {
		return nil, err
	}
	if proxy == nil {
		return nil, ErrProxyNotFound
	}
	return proxy, nil
}

// OnNewHighBid is the bidding core's hook, fired after every accepted human
// bid.
func (s *Service) OnNewHighBid(ctx context.Context, auctionID int, newHighBid int64, newHighBidder int) {
	zap.L().Debug("proxy evaluation triggered",
		zap.Int("auctionID", auctionID),
		zap.Int64("newHighBid", newHighBid),
		zap.Int("newHighBidder", newHighBidder),
	)
	s.EvaluateAuction(ctx, auctionID)
}

// EvaluateAuction runs the escalation loop until no active proxy can legally
// raise the high bid. Failures are absorbed: a counter-bid that loses its own
// race simply ends the chain, it never fails the bid that triggered it.
//
// The loop is iterative with an explicit bound: each pass promotes one
// challenger that is then excluded, so the pass count never exceeds the
// number of distinct proxy bidders on the auction.
func (s *Service) EvaluateAuction(ctx context.Context, auctionID int) {
	promoted := make(map[int]bool)

	for {
		auction, err := s.auctionRepo.GetByID(ctx, auctionID)
		if err != nil || auction == nil || auction.Status != domain.StatusActive {
			return
		}

		proxies, err := s.proxyRepo.FindActiveByAuction(ctx, auctionID)
		if err != nil {
			zap.L().Error("failed to load proxies for evaluation", zap.Error(err))
			return
		}
		if len(promoted) >= len(proxies) {
			return
		}

		minNext := auction.MinAcceptable()
		challenger, defender := pickContender(auction, proxies, promoted, minNext)
		if challenger == nil {
			return
		}

		steps := escalationSteps(auction, challenger, defender, minNext)
		promoted[challenger.UserID] = true

		for _, step := range steps {
			if _, err := s.placer.PlaceProxyBid(ctx, auctionID, step.bidderID, step.amount); err != nil {
				zap.L().Warn("proxy counter-bid rejected, stopping chain",
					zap.Int("auctionID", auctionID),
					zap.Int("bidderID", step.bidderID),
					zap.Int64("amount", step.amount),
					zap.Error(err),
				)
				return
			}
		}
	}
}

// pickContender selects the best challenger (greatest maximum, earliest
// created on ties — the repo orders that way) and the current high bidder's
// own proxy if they have one. A user is never matched against their own
// proxy.
func pickContender(auction *domain.Auction, proxies []domain.ProxyBid, promoted map[int]bool, minNext int64) (challenger, defender *domain.ProxyBid) {
	for i := range proxies {
		p := &proxies[i]
		if auction.CurrentBidder != nil && p.UserID == *auction.CurrentBidder {
			defender = p
			continue
		}
		if challenger == nil && !promoted[p.UserID] && p.MaxAmount >= minNext {
			challenger = p
		}
	}
	return challenger, defender
}

type bidStep struct {
	bidderID int
	amount   int64
}

// escalationSteps settles one challenger-versus-defender exchange into the
// bids that actually reach the ledger. The loser's ceiling prices the
// winner's bid: the winner pays min(loser.max + increment, winner.max),
// never their full maximum unless forced.
func escalationSteps(auction *domain.Auction, challenger, defender *domain.ProxyBid, minNext int64) []bidStep {
	inc := auction.MinIncrement

	// No proxy protection on the current high bid: a single minimum-step
	// counter takes the lead.
	if defender == nil || defender.MaxAmount < minNext {
		return []bidStep{{bidderID: challenger.UserID, amount: minNext}}
	}

	// Challenger outlasts the defender's ceiling.
	if challenger.MaxAmount > defender.MaxAmount {
		return []bidStep{{bidderID: challenger.UserID, amount: min64(challenger.MaxAmount, defender.MaxAmount+inc)}}
	}

	// Defender outlasts the challenger: the challenger's best legal bid goes
	// on the ledger, then the defender's proxy counters one increment above
	// it (capped by the defender's ceiling — a tie forces the full maximum).
	chAmount := min64(challenger.MaxAmount, defender.MaxAmount-inc)
	if chAmount < minNext {
		// The defender's ceiling is too close to the current high to fit a
		// legal counter above the challenge; the defender's proxy is exhausted
		// and its ceiling prices the challenger's winning bid.
		return []bidStep{{bidderID: challenger.UserID, amount: min64(challenger.MaxAmount, defender.MaxAmount+inc)}}
	}
	return []bidStep{
		{bidderID: challenger.UserID, amount: chAmount},
		{bidderID: defender.UserID, amount: min64(defender.MaxAmount, chAmount+inc)},
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func isTerminal(status string) bool {
	switch status {
	case domain.StatusEnded, domain.StatusSold, domain.StatusUnsold, domain.StatusRejected, domain.StatusCancelled:
		return true
	}
	return false
}
