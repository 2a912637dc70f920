// Package scheduler drives the time-based auction transitions. It polls for
// auctions whose start or end boundary has passed and pushes each one
// through the lifecycle service on a bounded worker pool. Transitions are
// conditional updates, so an auction picked up by two overlapping sweeps is
// still advanced exactly once.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/pkg/clock"
)

const (
	sweepLimit  = 1000
	poolWorkers = 10
)

type AuctionFinder interface {
	FindDueToStart(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error)
	FindDueToEnd(ctx context.Context, now time.Time, limit uint32) ([]domain.Auction, error)
}

// Lifecycle is the part of the auction service the scheduler drives.
type Lifecycle interface {
	Activate(ctx context.Context, auctionID int) error
	End(ctx context.Context, auctionID int) error
}

type Service struct {
	finder        AuctionFinder
	lifecycle     Lifecycle
	clock         clock.Clock
	workerPool    WorkerPoolI
	sweepInterval time.Duration

	// inFlight guards against re-dispatching an auction that a previous
	// sweep is still transitioning.
	inFlight sync.Map
}

func New(finder AuctionFinder, lifecycle Lifecycle, clk clock.Clock, sweepInterval time.Duration) *Service {
	return &Service{
		finder:        finder,
		lifecycle:     lifecycle,
		clock:         clk,
		workerPool:    NewWorkerPool(poolWorkers),
		sweepInterval: sweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("auction scheduler started", zap.Duration("sweepInterval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping scheduler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one scheduling pass: activate every approved auction past its
// start time, end every active auction past its end time.
func (s *Service) Sweep(ctx context.Context) {
	now := s.clock.Now()

	starting, err := s.finder.FindDueToStart(ctx, now, sweepLimit)
	if err != nil {
		zap.L().Error("failed to fetch auctions due to start", zap.Error(err))
	} else {
		s.dispatch(ctx, "start", starting, s.lifecycle.Activate)
	}

	ending, err := s.finder.FindDueToEnd(ctx, now, sweepLimit)
	if err != nil {
		zap.L().Error("failed to fetch auctions due to end", zap.Error(err))
		return
	}
	s.dispatch(ctx, "end", ending, s.lifecycle.End)
}

func (s *Service) dispatch(ctx context.Context, kind string, auctions []domain.Auction, transition func(context.Context, int) error) {
	var g errgroup.Group
	for _, auction := range auctions {
		auction := auction
		key := fmt.Sprintf("%s:%d", kind, auction.ID)

		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(key)
				if err := transition(ctx, auction.ID); err != nil {
					return fmt.Errorf("failed to %s auction %d: %w", kind, auction.ID, err)
				}
				return nil
			})
			if err != nil {
				s.inFlight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching sweep tasks", zap.Error(err))
	}
}
