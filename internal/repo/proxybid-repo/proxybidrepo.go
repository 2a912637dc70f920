package proxybidrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// Upsert creates or raises/lowers the user's standing maximum and reactivates
// it. One row per (auction, user) pair is enforced by the unique constraint.
func (r *Repository) Upsert(ctx context.Context, proxy *domain.ProxyBid) (*domain.ProxyBid, error) {
	query := `
        INSERT INTO proxy_bids (auction_id, user_id, max_amount, active)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (auction_id, user_id)
        DO UPDATE SET max_amount = EXCLUDED.max_amount, active = TRUE, updated_at = now()
        RETURNING id, auction_id, user_id, max_amount, active, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, proxy.AuctionID, proxy.UserID, proxy.MaxAmount)

	var saved domain.ProxyBid
	err := row.Scan(&saved.ID, &saved.AuctionID, &saved.UserID, &saved.MaxAmount, &saved.Active, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to upsert proxy bid", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) SetActive(ctx context.Context, auctionID, userID int, active bool) (bool, error) {
	query := `
        UPDATE proxy_bids
        SET active = $3, updated_at = now()
        WHERE auction_id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, auctionID, userID, active)
	if err != nil {
		zap.L().Error("failed to set proxy bid active flag", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Delete(ctx context.Context, auctionID, userID int) (bool, error) {
	query := `
        DELETE FROM proxy_bids
        WHERE auction_id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, auctionID, userID)
	if err != nil {
		zap.L().Error("failed to delete proxy bid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByAuctionAndUser(ctx context.Context, auctionID, userID int) (*domain.ProxyBid, error) {
	query := `
        SELECT id, auction_id, user_id, max_amount, active, created_at, updated_at
        FROM proxy_bids
        WHERE auction_id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, auctionID, userID)

	var proxy domain.ProxyBid
	err := row.Scan(&proxy.ID, &proxy.AuctionID, &proxy.UserID, &proxy.MaxAmount, &proxy.Active, &proxy.CreatedAt, &proxy.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find proxy bid", zap.Error(err))
		return nil, err
	}
	return &proxy, nil
}

// FindActiveByAuction returns active proxies ordered by the contender rule:
// greatest maximum first, ties broken by earliest creation.
func (r *Repository) FindActiveByAuction(ctx context.Context, auctionID int) ([]domain.ProxyBid, error) {
	query := `
        SELECT id, auction_id, user_id, max_amount, active, created_at, updated_at
        FROM proxy_bids
        WHERE auction_id = $1 AND active = TRUE
        ORDER BY max_amount DESC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, auctionID)
	if err != nil {
		zap.L().Error("failed to list active proxy bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proxies []domain.ProxyBid
	for rows.Next() {
		var proxy domain.ProxyBid
		if err := rows.Scan(&proxy.ID, &proxy.AuctionID, &proxy.UserID, &proxy.MaxAmount, &proxy.Active, &proxy.CreatedAt, &proxy.UpdatedAt); err != nil {
			return nil, err
		}
		proxies = append(proxies, proxy)
	}
	return proxies, rows.Err()
}
