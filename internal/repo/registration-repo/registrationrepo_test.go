package registrationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/veldmarket/auction-engine/internal/domain"
)

var registrationRows = []string{
	"id", "auction_id", "user_id", "fee_amount", "payment_ref",
	"payment_status", "is_winner", "deposit_applied", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	reg := &domain.Registration{
		AuctionID:     1,
		UserID:        102,
		FeeAmount:     500,
		PaymentRef:    "79927398713",
		PaymentStatus: domain.PaymentPaid,
	}

	t.Run("Registration created", func(t *testing.T) {
		rows := pgxmock.NewRows(registrationRows).
			AddRow(10, 1, 102, int64(500), "79927398713", domain.PaymentPaid, false, false, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO registrations (auction_id, user_id, fee_amount, payment_ref, payment_status)")).
			WithArgs(1, 102, int64(500), "79927398713", domain.PaymentPaid).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), reg)
		assert.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.False(t, created.DepositApplied)
	})

	t.Run("Duplicate pair", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO registrations (auction_id, user_id, fee_amount, payment_ref, payment_status)")).
			WithArgs(1, 102, int64(500), "79927398713", domain.PaymentPaid).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		created, err := repo.Create(context.Background(), reg)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Nil(t, created)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO registrations (auction_id, user_id, fee_amount, payment_ref, payment_status)")).
			WithArgs(1, 102, int64(500), "79927398713", domain.PaymentPaid).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), reg)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestRepository_FindByAuctionAndUser(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Registration exists", func(t *testing.T) {
		rows := pgxmock.NewRows(registrationRows).
			AddRow(10, 1, 102, int64(500), "79927398713", domain.PaymentPaid, false, false, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND user_id = $2")).
			WithArgs(1, 102).
			WillReturnRows(rows)

		reg, err := repo.FindByAuctionAndUser(context.Background(), 1, 102)
		assert.NoError(t, err)
		assert.Equal(t, 10, reg.ID)
		assert.Equal(t, domain.PaymentPaid, reg.PaymentStatus)
	})

	t.Run("No registration", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND user_id = $2")).
			WithArgs(1, 102).
			WillReturnError(pgx.ErrNoRows)

		reg, err := repo.FindByAuctionAndUser(context.Background(), 1, 102)
		assert.NoError(t, err)
		assert.Nil(t, reg)
	})
}

func TestRepository_FindByUser(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	rows := pgxmock.NewRows(registrationRows).
		AddRow(10, 1, 102, int64(500), "79927398713", domain.PaymentPaid, false, false, createdAt).
		AddRow(11, 2, 102, int64(1000), "79927398713", domain.PaymentPaid, true, true, createdAt.Add(time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(102).
		WillReturnRows(rows)

	regs, err := repo.FindByUser(context.Background(), 102)
	assert.NoError(t, err)
	assert.Len(t, regs, 2)
	assert.True(t, regs[1].IsWinner)
}

func TestRepository_ApplyWinnerDeposit(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deposit applied once", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET is_winner = TRUE, deposit_applied = TRUE")).
			WithArgs(1, 102).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.ApplyWinnerDeposit(context.Background(), 1, 102)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Already applied", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET is_winner = TRUE, deposit_applied = TRUE")).
			WithArgs(1, 102).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.ApplyWinnerDeposit(context.Background(), 1, 102)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
