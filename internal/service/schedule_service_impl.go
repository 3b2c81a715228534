package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jjCode01/xer-pro/internal/app"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

var _ app.OpenScheduleUseCase = (*scheduleService)(nil)

type scheduleService struct {
	source   TableSource
	observer UseCaseObserver
}

func NewScheduleService(source TableSource, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		source:   source,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Open(ctx context.Context, src contract.Source) (sched *schedule.Schedule, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": src.Path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "open-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var tables importer.Tables
	tables, err = s.source.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", src.Path, err)
	}
	if src.Project != "" {
		tables, err = importer.SelectProject(tables, src.Project)
		if err != nil {
			return nil, fmt.Errorf("selecting project: %w", err)
		}
	}

	if problems := importer.Validate(tables); len(problems) > 0 {
		err = newValidationError(src.Path, problems)
		return nil, err
	}

	var projectID string
	projectID, err = importer.ExportedProjectID(tables)
	if errors.Is(err, importer.ErrNoExportedProject) && len(tables[importer.TableProject]) > 1 {
		err = &contract.ScheduleError{
			Code:    contract.ErrAmbiguousProject,
			Message: fmt.Sprintf("%s holds %d projects; select one by id or short name", src.Path, len(tables[importer.TableProject])),
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("finding exported project: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	sched, err = schedule.Build(projectID, tables)
	if err != nil {
		return nil, fmt.Errorf("building schedule %s: %w", projectID, err)
	}
	fields["project"] = sched.Project.ShortName
	fields["tasks"] = len(sched.Tasks(schedule.TaskFilter{}))
	return sched, nil
}
