package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jjCode01/xer-pro/internal/app"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/warning"
)

var _ app.AnalyzeUseCase = (*analyzeService)(nil)

type analyzeService struct {
	schedules ScheduleService
	observer  UseCaseObserver
}

func NewAnalyzeService(schedules ScheduleService, observers ...UseCaseObserver) AnalyzeService {
	return &analyzeService{
		schedules: schedules,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *analyzeService) Analyze(ctx context.Context, req contract.AnalyzeRequest) (resp *contract.AnalyzeResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.NewString()
	fields := map[string]any{"path": req.Source.Path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze",
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var sched *schedule.Schedule
	sched, err = s.schedules.Open(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	resp = &contract.AnalyzeResponse{
		RunID:       runID,
		GeneratedAt: startedAt,
		Summary:     summarize(sched),
		Float:       sched.FloatDistribution(req.FloatThresholds),
		Schedule:    sched,
	}

	if req.IncludeWarnings {
		resp.Warnings = warning.Check(sched, req.Warnings)
		fields["warnings"] = resp.Warnings.Total()
	}
	if req.IncludeCashFlow {
		resp.CashFlow, resp.CashFlowErr = sched.CashFlow()
		if resp.CashFlowErr != nil {
			fields["cash_flow_error"] = resp.CashFlowErr.Error()
			slog.WarnContext(ctx, "cash flow unavailable", "path", req.Source.Path, "error", resp.CashFlowErr)
		}
	}
	if req.IncludeWorkFlow {
		resp.WorkFlow = sched.WorkFlow(req.WorkFlowStart, req.WorkFlowEnd)
	}
	return resp, nil
}
