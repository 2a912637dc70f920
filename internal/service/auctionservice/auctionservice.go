package auctionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

// sweepBatch bounds how many due auctions one sweep pass picks up.
const sweepBatch = 100

var (
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidSchedule   = errors.New("invalid auction schedule")
)

type AuctionRepo interface {
	Create(ctx context.Context, auction *domain.Auction) (*domain.Auction, error)
	GetByID(ctx context.Context, auctionID int) (*domain.Auction, error)
	TransitionStatus(ctx context.Context, auctionID int, from, to string) (bool, error)
	MarkSold(ctx context.Context, auctionID int, winnerID int, winningBid int64) (bool, error)
	FindDueToStart(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error)
	FindDueToEnd(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error)
}

type RegistrationRepo interface {
	ApplyWinnerDeposit(ctx context.Context, auctionID, userID int) (bool, error)
}

// ProxyEvaluator lets a just-activated auction resolve standing proxies that
// were set while it was still approved.
type ProxyEvaluator interface {
	EvaluateAuction(ctx context.Context, auctionID int)
}

type Service struct {
	auctionRepo AuctionRepo
	regRepo     RegistrationRepo
	publisher   events.Publisher
	clock       clock.Clock
	evaluator   ProxyEvaluator
}

func New(auctionRepo AuctionRepo, regRepo RegistrationRepo, publisher events.Publisher, clk clock.Clock) *Service {
	return &Service{
		auctionRepo: auctionRepo,
		regRepo:     regRepo,
		publisher:   publisher,
		clock:       clk,
	}
}

// SetEvaluator attaches the proxy engine after construction; the proxy
// service needs the bidding core first, which needs the repos this service
// shares.
func (s *Service) SetEvaluator(evaluator ProxyEvaluator) {
	s.evaluator = evaluator
}

// CreateAuction stores a new auction in pending, awaiting moderation. A
// reserve of zero means no reserve.
func (s *Service) CreateAuction(ctx context.Context, auction *domain.Auction) (*domain.Auction, error) {
	if auction.StartingBid <= 0 {
		return nil, fmt.Errorf("%w: starting bid must be positive", ErrInvalidSchedule)
	}
	if auction.MinIncrement <= 0 {
		return nil, fmt.Errorf("%w: minimum increment must be positive", ErrInvalidSchedule)
	}
	if auction.ReservePrice < 0 {
		return nil, fmt.Errorf("%w: reserve cannot be negative", ErrInvalidSchedule)
	}
	if auction.EndTime != nil && !auction.EndTime.After(auction.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidSchedule)
	}

	auction.Status = domain.StatusPending
	created, err := s.auctionRepo.Create(ctx, auction)
	if err != nil {
		return nil, err
	}
	zap.L().Info("auction created",
		zap.Int("auctionID", created.ID),
		zap.Int("listingID", created.ListingID),
	)
	return created, nil
}

func (s *Service) GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error) {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	return auction, nil
}

// Approve moves a moderated auction into the schedulable pool.
func (s *Service) Approve(ctx context.Context, auctionID int) error {
	return s.transition(ctx, auctionID, domain.StatusPending, domain.StatusApproved)
}

func (s *Service) Reject(ctx context.Context, auctionID int) error {
	return s.transition(ctx, auctionID, domain.StatusPending, domain.StatusRejected)
}

// Cancel withdraws an auction before it has ended. Committed bids stay on
// the ledger; there is no winner and no settlement.
func (s *Service) Cancel(ctx context.Context, auctionID int) error {
	for _, from := range []string{domain.StatusApproved, domain.StatusActive} {
		ok, err := s.auctionRepo.TransitionStatus(ctx, auctionID, from, domain.StatusCancelled)
		if err != nil {
			return err
		}
		if ok {
			s.publishStatus(auctionID, from, domain.StatusCancelled)
			return nil
		}
	}
	return s.transitionFailure(ctx, auctionID)
}

// Activate opens bidding once the start time has passed. The conditional
// update makes duplicate sweep fires harmless: only one of them lands.
func (s *Service) Activate(ctx context.Context, auctionID int) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	if s.clock.Now().Before(auction.StartTime) {
		return fmt.Errorf("%w: start time not reached", ErrInvalidTransition)
	}

	ok, err := s.auctionRepo.TransitionStatus(ctx, auctionID, domain.StatusApproved, domain.StatusActive)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionFailure(ctx, auctionID)
	}
	s.publishStatus(auctionID, domain.StatusApproved, domain.StatusActive)

	// Proxies set before activation compete for the opening bid now.
	if s.evaluator != nil {
		s.evaluator.EvaluateAuction(ctx, auctionID)
	}
	return nil
}

// End closes bidding at the deadline and settles immediately. The
// active→ended update and the bid commit path both condition on
// status='active' against the same row, so a bid racing the cutover either
// lands before it or is rejected, never after.
func (s *Service) End(ctx context.Context, auctionID int) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	if auction.EndTime == nil || s.clock.Now().Before(*auction.EndTime) {
		return fmt.Errorf("%w: end time not reached", ErrInvalidTransition)
	}

	ok, err := s.auctionRepo.TransitionStatus(ctx, auctionID, domain.StatusActive, domain.StatusEnded)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionFailure(ctx, auctionID)
	}
	s.publishStatus(auctionID, domain.StatusActive, domain.StatusEnded)

	return s.Settle(ctx, auctionID)
}

// Settle resolves an ended auction to sold or unsold. Both resolutions are
// single conditional writes on status='ended', so calling Settle twice
// performs the side effects and emits the terminal events exactly once.
func (s *Service) Settle(ctx context.Context, auctionID int) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	if auction.Status != domain.StatusEnded {
		// Already settled or never ended; nothing to do either way for a
		// terminal status, anything else is a caller error.
		if auction.Status == domain.StatusSold || auction.Status == domain.StatusUnsold {
			return nil
		}
		return fmt.Errorf("%w: cannot settle from %s", ErrInvalidTransition, auction.Status)
	}

	highBid, hasBid := auction.HighBid()
	reserveMet := hasBid && (auction.ReservePrice == 0 || highBid >= auction.ReservePrice)

	if !reserveMet {
		ok, err := s.auctionRepo.TransitionStatus(ctx, auctionID, domain.StatusEnded, domain.StatusUnsold)
		if err != nil {
			return err
		}
		if ok {
			zap.L().Info("auction settled unsold",
				zap.Int("auctionID", auctionID),
				zap.Bool("hadBids", hasBid),
			)
			s.publishStatus(auctionID, domain.StatusEnded, domain.StatusUnsold)
		}
		return nil
	}

	winnerID := *auction.CurrentBidder
	ok, err := s.auctionRepo.MarkSold(ctx, auctionID, winnerID, highBid)
	if err != nil {
		return err
	}
	if !ok {
		// Lost to a concurrent settlement; that one emitted the events.
		return nil
	}

	applied, err := s.regRepo.ApplyWinnerDeposit(ctx, auctionID, winnerID)
	if err != nil {
		zap.L().Error("failed to apply winner deposit",
			zap.Int("auctionID", auctionID),
			zap.Int("winnerID", winnerID),
			zap.Error(err),
		)
	} else if !applied {
		zap.L().Warn("winner deposit not applied",
			zap.Int("auctionID", auctionID),
			zap.Int("winnerID", winnerID),
		)
	}

	zap.L().Info("auction settled sold",
		zap.Int("auctionID", auctionID),
		zap.Int("winnerID", winnerID),
		zap.Int64("winningBid", highBid),
	)
	s.publishStatus(auctionID, domain.StatusEnded, domain.StatusSold)

	won := events.New(events.TypeAuctionWon, auctionID)
	won.AuctionWon = &events.AuctionWonPayload{WinnerID: winnerID, WinningBid: highBid}
	s.publisher.Publish(won)

	settlement := events.New(events.TypeSettlement, auctionID)
	settlement.Settlement = &events.SettlementPayload{
		ListingID:  auction.ListingID,
		WinnerID:   winnerID,
		WinningBid: highBid,
	}
	s.publisher.Publish(settlement)

	return nil
}

// Sweep advances every auction whose scheduled boundary has passed. Called
// by the scheduler on each tick; per-auction failures are logged and do not
// stop the pass.
func (s *Service) Sweep(ctx context.Context) error {
	now := s.clock.Now()

	due, err := s.auctionRepo.FindDueToStart(ctx, now, sweepBatch)
	if err != nil {
		return err
	}
	for _, auction := range due {
		if err := s.Activate(ctx, auction.ID); err != nil {
			zap.L().Warn("sweep failed to activate auction",
				zap.Int("auctionID", auction.ID),
				zap.Error(err),
			)
		}
	}

	ending, err := s.auctionRepo.FindDueToEnd(ctx, now, sweepBatch)
	if err != nil {
		return err
	}
	for _, auction := range ending {
		if err := s.End(ctx, auction.ID); err != nil {
			zap.L().Warn("sweep failed to end auction",
				zap.Int("auctionID", auction.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *Service) transition(ctx context.Context, auctionID int, from, to string) error {
	ok, err := s.auctionRepo.TransitionStatus(ctx, auctionID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionFailure(ctx, auctionID)
	}
	s.publishStatus(auctionID, from, to)
	return nil
}

// transitionFailure distinguishes a missing auction from one in the wrong
// state after a conditional update affected no rows.
func (s *Service) transitionFailure(ctx context.Context, auctionID int) error {
	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return ErrAuctionNotFound
	}
	return fmt.Errorf("%w: auction is %s", ErrInvalidTransition, auction.Status)
}

func (s *Service) publishStatus(auctionID int, from, to string) {
	e := events.New(events.TypeStatusChanged, auctionID)
	e.StatusChanged = &events.StatusChangedPayload{From: from, To: to}
	s.publisher.Publish(e)
}
