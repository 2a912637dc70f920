package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// syncPool runs tasks inline so sweeps complete before assertions.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

type mocks struct {
	finder    *MockAuctionFinder
	lifecycle *MockLifecycle
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		finder:    NewMockAuctionFinder(ctrl),
		lifecycle: NewMockLifecycle(ctrl),
	}
	service := New(m.finder, m.lifecycle, clock.NewManual(baseTime), 500*time.Millisecond)
	service.workerPool = syncPool{}
	return service, m
}

func TestSweep(t *testing.T) {
	t.Run("Dispatches starts and ends", func(t *testing.T) {
		service, m := NewMock(t)

		m.finder.EXPECT().
			FindDueToStart(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 2}, {ID: 3}}, nil)
		m.lifecycle.EXPECT().Activate(gomock.Any(), 2).Return(nil)
		m.lifecycle.EXPECT().Activate(gomock.Any(), 3).Return(nil)

		m.finder.EXPECT().
			FindDueToEnd(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 4}}, nil)
		m.lifecycle.EXPECT().End(gomock.Any(), 4).Return(nil)

		service.Sweep(context.Background())
	})

	t.Run("Transition failure does not stop the pass", func(t *testing.T) {
		service, m := NewMock(t)

		m.finder.EXPECT().
			FindDueToStart(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 2}, {ID: 3}}, nil)
		m.lifecycle.EXPECT().Activate(gomock.Any(), 2).Return(errors.New("connection reset"))
		m.lifecycle.EXPECT().Activate(gomock.Any(), 3).Return(nil)

		m.finder.EXPECT().
			FindDueToEnd(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return(nil, nil)

		service.Sweep(context.Background())
	})

	t.Run("Lookup failure skips that half of the sweep", func(t *testing.T) {
		service, m := NewMock(t)

		m.finder.EXPECT().
			FindDueToStart(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return(nil, errors.New("connection reset"))
		m.finder.EXPECT().
			FindDueToEnd(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 4}}, nil)
		m.lifecycle.EXPECT().End(gomock.Any(), 4).Return(nil)

		service.Sweep(context.Background())
	})

	t.Run("In-flight auction is not dispatched twice", func(t *testing.T) {
		service, m := NewMock(t)

		service.inFlight.Store("end:4", struct{}{})

		m.finder.EXPECT().
			FindDueToStart(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return(nil, nil)
		m.finder.EXPECT().
			FindDueToEnd(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 4}}, nil)

		service.Sweep(context.Background())
	})

	t.Run("In-flight guard is scoped per service", func(t *testing.T) {
		service, m := NewMock(t)
		other, _ := NewMock(t)

		// A transition pending on one scheduler must not block another
		// instance from dispatching the same auction.
		other.inFlight.Store("end:4", struct{}{})

		m.finder.EXPECT().
			FindDueToStart(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return(nil, nil)
		m.finder.EXPECT().
			FindDueToEnd(gomock.Any(), baseTime, uint32(sweepLimit)).
			Return([]domain.Auction{{ID: 4}}, nil)
		m.lifecycle.EXPECT().End(gomock.Any(), 4).Return(nil)

		service.Sweep(context.Background())
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	service, m := NewMock(t)
	service.sweepInterval = 10 * time.Millisecond

	m.finder.EXPECT().
		FindDueToStart(gomock.Any(), gomock.Any(), uint32(sweepLimit)).
		Return(nil, nil).
		AnyTimes()
	m.finder.EXPECT().
		FindDueToEnd(gomock.Any(), gomock.Any(), uint32(sweepLimit)).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}

func TestWorkerPool(t *testing.T) {
	t.Run("Executes queued tasks", func(t *testing.T) {
		wp := NewWorkerPool(2)
		defer wp.Close()

		results := make(chan int, 5)
		for i := 0; i < 5; i++ {
			i := i
			err := wp.AddTask(context.Background(), func() error {
				results <- i
				return nil
			})
			assert.NoError(t, err)
		}

		seen := make(map[int]bool)
		for i := 0; i < 5; i++ {
			select {
			case v := <-results:
				seen[v] = true
			case <-time.After(time.Second):
				t.Fatal("tasks did not complete")
			}
		}
		assert.Len(t, seen, 5)
	})

	t.Run("Canceled context rejects new tasks", func(t *testing.T) {
		wp := NewWorkerPool(0)
		defer wp.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wp.AddTask(ctx, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
