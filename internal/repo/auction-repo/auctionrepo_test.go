package auctionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/pg"
)

var auctionRows = []string{
	"id", "listing_id", "seller_id", "starting_bid", "reserve_price", "min_increment",
	"current_bid", "current_bidder", "start_time", "end_time", "status",
	"winner_id", "winning_bid", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)
	t.Cleanup(ctrl.Finish)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	startTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	auction := &domain.Auction{
		ListingID:    77,
		SellerID:     5,
		StartingBid:  10000,
		ReservePrice: 15000,
		MinIncrement: 1000,
		StartTime:    startTime,
		Status:       domain.StatusPending,
	}

	rows := pgxmock.NewRows(auctionRows).
		AddRow(1, 77, 5, int64(10000), int64(15000), int64(1000),
			nil, nil, startTime, nil, domain.StatusPending, nil, nil, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auctions (listing_id, seller_id, starting_bid, reserve_price, min_increment, start_time, end_time, status)")).
		WithArgs(77, 5, int64(10000), int64(15000), int64(1000), startTime, (*time.Time)(nil), domain.StatusPending).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), auction)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Nil(t, created.CurrentBid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	startTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Auction exists",
			mockSetup: func() {
				bid := int64(13000)
				bidder := 102
				rows := pgxmock.NewRows(auctionRows).
					AddRow(1, 77, 5, int64(10000), int64(15000), int64(1000),
						&bid, &bidder, startTime, nil, domain.StatusActive, nil, nil, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Auction does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM auctions")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			auction, err := repo.GetByID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 1, auction.ID)
				assert.Equal(t, int64(13000), *auction.CurrentBid)
				assert.Equal(t, 102, *auction.CurrentBidder)
			} else {
				assert.Nil(t, auction)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateHighBidCAS(t *testing.T) {
	repo, mock := NewMock(t)
	expected := int64(12000)

	tests := []struct {
		name        string
		expectedBid *int64
		mockSetup   func(expectedBid *int64)
		want        bool
		expectErr   bool
	}{
		{
			name:        "Compare-and-set wins",
			expectedBid: &expected,
			mockSetup: func(expectedBid *int64) {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'active' AND current_bid IS NOT DISTINCT FROM $4")).
					WithArgs(1, int64(13000), 102, expectedBid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name:        "First bid on an empty ladder",
			expectedBid: nil,
			mockSetup: func(expectedBid *int64) {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'active' AND current_bid IS NOT DISTINCT FROM $4")).
					WithArgs(1, int64(13000), 102, expectedBid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name:        "Concurrent bid landed first",
			expectedBid: &expected,
			mockSetup: func(expectedBid *int64) {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'active' AND current_bid IS NOT DISTINCT FROM $4")).
					WithArgs(1, int64(13000), 102, expectedBid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name:        "Database error",
			expectedBid: &expected,
			mockSetup: func(expectedBid *int64) {
				mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'active' AND current_bid IS NOT DISTINCT FROM $4")).
					WithArgs(1, int64(13000), 102, expectedBid).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.expectedBid)

			ok, err := repo.UpdateHighBidCAS(context.Background(), 1, tt.expectedBid, 13000, 102)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_TransitionStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Transition applies", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = $2")).
			WithArgs(1, domain.StatusApproved, domain.StatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.TransitionStatus(context.Background(), 1, domain.StatusApproved, domain.StatusActive)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Status already moved on", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = $2")).
			WithArgs(1, domain.StatusApproved, domain.StatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.TransitionStatus(context.Background(), 1, domain.StatusApproved, domain.StatusActive)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkSold(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Ended auction sold", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = 'sold', winner_id = $2, winning_bid = $3")).
			WithArgs(1, 102, int64(16000)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkSold(context.Background(), 1, 102, 16000)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Duplicate settlement is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = 'sold', winner_id = $2, winning_bid = $3")).
			WithArgs(1, 102, int64(16000)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkSold(context.Background(), 1, 102, 16000)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindDue(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-time.Hour)

	t.Run("Due to start", func(t *testing.T) {
		rows := pgxmock.NewRows(auctionRows).
			AddRow(1, 77, 5, int64(10000), int64(0), int64(1000),
				nil, nil, now.Add(-time.Minute), nil, domain.StatusApproved, nil, nil, createdAt).
			AddRow(2, 78, 5, int64(20000), int64(0), int64(2000),
				nil, nil, now.Add(-time.Second), nil, domain.StatusApproved, nil, nil, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'approved' AND start_time <= $1")).
			WithArgs(now, uint32(100)).
			WillReturnRows(rows)

		auctions, err := repo.FindDueToStart(context.Background(), now, 100)
		assert.NoError(t, err)
		assert.Len(t, auctions, 2)
		assert.Equal(t, 1, auctions[0].ID)
	})

	t.Run("Due to end", func(t *testing.T) {
		endTime := now.Add(-time.Minute)
		bid := int64(13000)
		bidder := 102
		rows := pgxmock.NewRows(auctionRows).
			AddRow(3, 79, 5, int64(10000), int64(0), int64(1000),
				&bid, &bidder, now.Add(-time.Hour), &endTime, domain.StatusActive, nil, nil, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'active' AND end_time IS NOT NULL AND end_time <= $1")).
			WithArgs(now, uint32(100)).
			WillReturnRows(rows)

		auctions, err := repo.FindDueToEnd(context.Background(), now, 100)
		assert.NoError(t, err)
		assert.Len(t, auctions, 1)
		assert.Equal(t, 3, auctions[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'approved' AND start_time <= $1")).
			WithArgs(now, uint32(100)).
			WillReturnError(errors.New("database error"))

		auctions, err := repo.FindDueToStart(context.Background(), now, 100)
		assert.Error(t, err)
		assert.Nil(t, auctions)
	})
}
