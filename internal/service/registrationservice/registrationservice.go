package registrationservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	registrationrepo "github.com/veldmarket/auction-engine/internal/repo/registration-repo"
)

var (
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrRegistrationClosed = errors.New("auction no longer accepts registrations")
	ErrRegistrationExists = errors.New("user already registered for this auction")
	ErrInvalidPaymentRef  = errors.New("invalid payment reference")
	ErrInvalidFee         = errors.New("fee amount must be positive")
)

type RegistrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	FindByAuctionAndUser(ctx context.Context, auctionID, userID int) (*domain.Registration, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Registration, error)
}

type AuctionRepo interface {
	GetByID(ctx context.Context, auctionID int) (*domain.Auction, error)
}

type Service struct {
	regRepo     RegistrationRepo
	auctionRepo AuctionRepo
}

func New(regRepo RegistrationRepo, auctionRepo AuctionRepo) *Service {
	return &Service{
		regRepo:     regRepo,
		auctionRepo: auctionRepo,
	}
}

// ConfirmFee is the payment collaborator's webhook entry: a confirmed fee
// payment creates the paid registration that gates bidding. The payment
// reference carries a Luhn check digit; a reference that fails the checksum
// was mangled in transit and is rejected before any lookup.
func (s *Service) ConfirmFee(ctx context.Context, auctionID, userID int, feeAmount int64, paymentRef string) (*domain.Registration, error) {
	if err := goluhn.Validate(paymentRef); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentRef, paymentRef)
	}
	if feeAmount <= 0 {
		return nil, ErrInvalidFee
	}

	auction, err := s.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}
	switch auction.Status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusActive:
	default:
		return nil, ErrRegistrationClosed
	}

	reg, err := s.regRepo.Create(ctx, &domain.Registration{
		AuctionID:     auctionID,
		UserID:        userID,
		FeeAmount:     feeAmount,
		PaymentRef:    paymentRef,
		PaymentStatus: domain.PaymentPaid,
	})
	if err != nil {
		if errors.Is(err, registrationrepo.ErrDuplicate) {
			return nil, ErrRegistrationExists
		}
		return nil, err
	}

	zap.L().Info("registration confirmed",
		zap.Int("auctionID", auctionID),
		zap.Int("userID", userID),
		zap.Int64("feeAmount", feeAmount),
	)
	return reg, nil
}

// GetRegistration reports the user's registration for one auction, nil when
// none exists.
func (s *Service) GetRegistration(ctx context.Context, auctionID, userID int) (*domain.Registration, error) {
	return s.regRepo.FindByAuctionAndUser(ctx, auctionID, userID)
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Registration, error) {
	return s.regRepo.FindByUser(ctx, userID)
}
