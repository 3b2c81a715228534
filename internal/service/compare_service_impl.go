package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jjCode01/xer-pro/internal/app"
	"github.com/jjCode01/xer-pro/internal/comparison"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"golang.org/x/sync/errgroup"
)

var _ app.CompareUseCase = (*compareService)(nil)

type compareService struct {
	schedules ScheduleService
	observer  UseCaseObserver
}

func NewCompareService(schedules ScheduleService, observers ...UseCaseObserver) CompareService {
	return &compareService{
		schedules: schedules,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *compareService) Compare(ctx context.Context, req contract.CompareRequest) (resp *contract.CompareResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.NewString()
	fields := map[string]any{
		"first":  req.First.Path,
		"second": req.Second.Path,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compare",
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var first, second *schedule.Schedule
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		first, err = s.schedules.Open(gctx, req.First)
		if err != nil {
			return fmt.Errorf("opening %s: %w", req.First.Path, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		second, err = s.schedules.Open(gctx, req.Second)
		if err != nil {
			return fmt.Errorf("opening %s: %w", req.Second.Path, err)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	current, previous := schedule.Order(first, second)
	changes := comparison.Compare(current, previous)
	counts := changes.Counts()

	total := 0
	for _, n := range counts {
		total += n
	}
	fields["changes"] = total

	return &contract.CompareResponse{
		RunID:            runID,
		GeneratedAt:      startedAt,
		Current:          summarize(current),
		Previous:         summarize(previous),
		CurrentFloat:     current.FloatDistribution(req.FloatThresholds),
		PreviousFloat:    previous.FloatDistribution(req.FloatThresholds),
		Changes:          changes,
		Counts:           counts,
		Swapped:          current == second,
		CurrentSchedule:  current,
		PreviousSchedule: previous,
	}, nil
}
