package bidrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/veldmarket/auction-engine/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	placedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	bid := &domain.Bid{
		ID:        "bid-1",
		AuctionID: 1,
		BidderID:  102,
		Amount:    13000,
		IsProxy:   true,
		PlacedAt:  placedAt,
	}

	t.Run("Ledger row appended", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids (id, auction_id, bidder_id, amount, is_proxy, placed_at)")).
			WithArgs("bid-1", 1, 102, int64(13000), true, placedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Insert(context.Background(), bid))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids (id, auction_id, bidder_id, amount, is_proxy, placed_at)")).
			WithArgs("bid-1", 1, 102, int64(13000), true, placedAt).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Insert(context.Background(), bid))
	})
}

func TestRepository_History(t *testing.T) {
	repo, mock := NewMock(t)
	placedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("Oldest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "auction_id", "bidder_id", "amount", "is_proxy", "placed_at"}).
			AddRow("bid-1", 1, 102, int64(12000), false, placedAt).
			AddRow("bid-2", 1, 101, int64(13000), true, placedAt.Add(time.Second))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		bids, err := repo.History(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, bids, 2)
		assert.Equal(t, "bid-1", bids[0].ID)
		assert.True(t, bids[1].IsProxy)
	})

	t.Run("No bids", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "auction_id", "bidder_id", "amount", "is_proxy", "placed_at"}))

		bids, err := repo.History(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, bids)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		bids, err := repo.History(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, bids)
	})
}

func TestRepository_CountByAuction(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Count returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountByAuction(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountByAuction(context.Background(), 1)
		assert.Error(t, err)
		assert.Zero(t, count)
	})
}
