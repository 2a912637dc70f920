package registrationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/pg"
)

// ErrDuplicate is returned when a registration already exists for the
// (auction, user) pair.
var ErrDuplicate = errors.New("registration already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	query := `
        INSERT INTO registrations (auction_id, user_id, fee_amount, payment_ref, payment_status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, auction_id, user_id, fee_amount, payment_ref, payment_status, is_winner, deposit_applied, created_at
    `
	row := r.db.QueryRow(ctx, query, reg.AuctionID, reg.UserID, reg.FeeAmount, reg.PaymentRef, reg.PaymentStatus)

	var created domain.Registration
	err := row.Scan(
		&created.ID, &created.AuctionID, &created.UserID, &created.FeeAmount, &created.PaymentRef,
		&created.PaymentStatus, &created.IsWinner, &created.DepositApplied, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicate
		}
		zap.L().Error("failed to create registration", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByAuctionAndUser(ctx context.Context, auctionID, userID int) (*domain.Registration, error) {
	query := `
        SELECT id, auction_id, user_id, fee_amount, payment_ref, payment_status, is_winner, deposit_applied, created_at
        FROM registrations
        WHERE auction_id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, auctionID, userID)

	var reg domain.Registration
	err := row.Scan(
		&reg.ID, &reg.AuctionID, &reg.UserID, &reg.FeeAmount, &reg.PaymentRef,
		&reg.PaymentStatus, &reg.IsWinner, &reg.DepositApplied, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find registration", zap.Error(err))
		return nil, err
	}
	return &reg, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Registration, error) {
	query := `
        SELECT id, auction_id, user_id, fee_amount, payment_ref, payment_status, is_winner, deposit_applied, created_at
        FROM registrations
        WHERE user_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list registrations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		err := rows.Scan(
			&reg.ID, &reg.AuctionID, &reg.UserID, &reg.FeeAmount, &reg.PaymentRef,
			&reg.PaymentStatus, &reg.IsWinner, &reg.DepositApplied, &reg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// ApplyWinnerDeposit marks the winner's registration and flips deposit_applied.
// The deposit_applied guard makes the flip happen exactly once; a repeated
// settlement attempt affects zero rows.
func (r *Repository) ApplyWinnerDeposit(ctx context.Context, auctionID, userID int) (bool, error) {
	query := `
        UPDATE registrations
        SET is_winner = TRUE, deposit_applied = TRUE
        WHERE auction_id = $1 AND user_id = $2 AND payment_status = 'paid' AND deposit_applied = FALSE
    `
	tag, err := r.db.Exec(ctx, query, auctionID, userID)
	if err != nil {
		zap.L().Error("failed to apply winner deposit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
