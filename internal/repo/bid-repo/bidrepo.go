package bidrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/pg"
)

// Repository persists the append-only bid ledger. There is deliberately no
// update or delete path.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, auction_id, bidder_id, amount, is_proxy, placed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, bid.ID, bid.AuctionID, bid.BidderID, bid.Amount, bid.IsProxy, bid.PlacedAt)
	if err != nil {
		zap.L().Error("failed to insert bid", zap.Error(err))
		return err
	}
	return nil
}

// History returns every bid on the auction, oldest first.
func (r *Repository) History(ctx context.Context, auctionID int) ([]domain.Bid, error) {
	query := `
        SELECT id, auction_id, bidder_id, amount, is_proxy, placed_at
        FROM bids
        WHERE auction_id = $1
        ORDER BY placed_at, amount
    `
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("failed to get bid history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.BidderID, &b.Amount, &b.IsProxy, &b.PlacedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func (r *Repository) CountByAuction(ctx context.Context, auctionID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM bids
        WHERE auction_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, auctionID).Scan(&count); err != nil {
		zap.L().Error("failed to count bids", zap.Error(err))
		return 0, err
	}
	return count, nil
}
