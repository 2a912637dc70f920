package watchlistrepo

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

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)

	entry := &domain.WatchlistEntry{
		AuctionID:    1,
		UserID:       103,
		NotifyOutbid: true,
		NotifyStatus: false,
	}

	t.Run("Entry upserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO watchlist (auction_id, user_id, notify_outbid, notify_status)")).
			WithArgs(1, 103, true, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Add(context.Background(), entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO watchlist (auction_id, user_id, notify_outbid, notify_status)")).
			WithArgs(1, 103, true, false).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Add(context.Background(), entry))
	})
}

func TestRepository_Remove(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Entry removed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM watchlist")).
			WithArgs(1, 103).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		ok, err := repo.Remove(context.Background(), 1, 103)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Not watching", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM watchlist")).
			WithArgs(1, 103).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		ok, err := repo.Remove(context.Background(), 1, 103)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindByAuction(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Watchers listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "auction_id", "user_id", "notify_outbid", "notify_status", "created_at"}).
			AddRow(1, 1, 103, true, false, now).
			AddRow(2, 1, 104, false, true, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM watchlist")).
			WithArgs(1).
			WillReturnRows(rows)

		entries, err := repo.FindByAuction(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.True(t, entries[0].NotifyOutbid)
		assert.True(t, entries[1].NotifyStatus)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM watchlist")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		entries, err := repo.FindByAuction(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
