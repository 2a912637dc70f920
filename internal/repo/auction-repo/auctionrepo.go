package auctionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/pg"
)

const auctionColumns = `id, listing_id, seller_id, starting_bid, reserve_price, min_increment,
	       current_bid, current_bidder, start_time, end_time, status, winner_id, winning_bid, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAuction(row pgx.Row) (*domain.Auction, error) {
	var a domain.Auction
	err := row.Scan(
		&a.ID, &a.ListingID, &a.SellerID, &a.StartingBid, &a.ReservePrice, &a.MinIncrement,
		&a.CurrentBid, &a.CurrentBidder, &a.StartTime, &a.EndTime, &a.Status,
		&a.WinnerID, &a.WinningBid, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, auction *domain.Auction) (*domain.Auction, error) {
	query := `
        INSERT INTO auctions (listing_id, seller_id, starting_bid, reserve_price, min_increment, start_time, end_time, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + auctionColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		auction.ListingID, auction.SellerID, auction.StartingBid, auction.ReservePrice,
		auction.MinIncrement, auction.StartTime, auction.EndTime, auction.Status,
	)
	created, err := scanAuction(row)
	if err != nil {
		zap.L().Error("failed to create auction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, auctionID int) (*domain.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE id = $1
    `
	auction, err := scanAuction(r.db.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get auction", zap.Error(err))
		return nil, err
	}
	return auction, nil
}

// UpdateHighBidCAS commits a new high bid only when the stored current_bid
// still equals the value the caller read and the auction is still active.
// A false return means the compare-and-set lost: either a concurrent bid
// raised the price first or the auction left the active state.
func (r *Repository) UpdateHighBidCAS(ctx context.Context, auctionID int, expectedBid *int64, newBid int64, bidderID int) (bool, error) {
	query := `
        UPDATE auctions
        SET current_bid = $2, current_bidder = $3
        WHERE id = $1 AND status = 'active' AND current_bid IS NOT DISTINCT FROM $4
    `
	tag, err := r.db.Exec(ctx, query, auctionID, newBid, bidderID, expectedBid)
	if err != nil {
		zap.L().Error("failed to update high bid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// TransitionStatus moves an auction between lifecycle states. The update is
// conditioned on the expected current status, so duplicate timer fires and
// racing bid commits resolve deterministically: whichever write lands first
// wins, the other sees false.
func (r *Repository) TransitionStatus(ctx context.Context, auctionID int, from, to string) (bool, error) {
	query := `
        UPDATE auctions
        SET status = $3
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, auctionID, from, to)
	if err != nil {
		zap.L().Error("failed to transition auction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkSold finalizes a won auction: ended → sold plus winner fields, in one
// conditional write so a second settlement attempt is a no-op.
func (r *Repository) MarkSold(ctx context.Context, auctionID int, winnerID int, winningBid int64) (bool, error) {
	query := `
        UPDATE auctions
        SET status = 'sold', winner_id = $2, winning_bid = $3
        WHERE id = $1 AND status = 'ended'
    `
	tag, err := r.db.Exec(ctx, query, auctionID, winnerID, winningBid)
	if err != nil {
		zap.L().Error("failed to mark auction sold", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindDueToStart(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE status = 'approved' AND start_time <= $1
        ORDER BY start_time
        LIMIT $2
    `
	return r.findDue(ctx, query, now, limit)
}

func (r *Repository) FindDueToEnd(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE status = 'active' AND end_time IS NOT NULL AND end_time <= $1
        ORDER BY end_time
        LIMIT $2
    `
	return r.findDue(ctx, query, now, limit)
}

func (r *Repository) findDue(ctx context.Context, query string, now time.Time, limit uint32) ([]domain.Auction, error) {
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to find due auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var auctions []domain.Auction
	for rows.Next() {
		auction, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, *auction)
	}
	return auctions, rows.Err()
}
