package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/internal/pg"
	"github.com/veldmarket/auction-engine/internal/repo"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, pg.NewMockTXManager(ctrl), events.NewBus(), clock.New())

	assert.NotNil(t, services.AuctionService)
	assert.NotNil(t, services.BiddingService)
	assert.NotNil(t, services.ProxyService)
	assert.NotNil(t, services.RegistrationService)
	assert.NotNil(t, services.WatchService)
	assert.NotNil(t, services.Lifecycle)
}
