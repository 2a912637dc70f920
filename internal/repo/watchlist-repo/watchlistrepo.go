package watchlistrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Add(ctx context.Context, entry *domain.WatchlistEntry) error {
	query := `
        INSERT INTO watchlist (auction_id, user_id, notify_outbid, notify_status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (auction_id, user_id)
        DO UPDATE SET notify_outbid = EXCLUDED.notify_outbid, notify_status = EXCLUDED.notify_status
    `
	_, err := r.db.Exec(ctx, query, entry.AuctionID, entry.UserID, entry.NotifyOutbid, entry.NotifyStatus)
	if err != nil {
		zap.L().Error("failed to add watchlist entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, auctionID, userID int) (bool, error) {
	query := `
        DELETE FROM watchlist
        WHERE auction_id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, auctionID, userID)
	if err != nil {
		zap.L().Error("failed to remove watchlist entry", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByAuction(ctx context.Context, auctionID int) ([]domain.WatchlistEntry, error) {
	query := `
        SELECT id, auction_id, user_id, notify_outbid, notify_status, created_at
        FROM watchlist
        WHERE auction_id = $1
    `
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("failed to list watchlist entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WatchlistEntry
	for rows.Next() {
		var e domain.WatchlistEntry
		if err := rows.Scan(&e.ID, &e.AuctionID, &e.UserID, &e.NotifyOutbid, &e.NotifyStatus, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
