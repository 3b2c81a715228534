package service

import (
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

// summarize collects the headline figures of a schedule.
func summarize(s *schedule.Schedule) contract.ScheduleSummary {
	taskCounts := make(map[domain.TaskStatus]int)
	total := 0
	for status, tasks := range s.GroupByStatus() {
		taskCounts[status] = len(tasks)
		total += len(tasks)
	}

	linkCounts := make(map[domain.LinkType]int)
	logic := 0
	for link, rels := range s.GroupByLink() {
		linkCounts[link] = len(rels)
		logic += len(rels)
	}

	return contract.ScheduleSummary{
		ProjectID:         s.ID(),
		ShortName:         s.Project.ShortName,
		Name:              s.Name,
		DataDate:          s.DataDate(),
		PlanStart:         s.Project.PlanStart,
		MustFinish:        s.Project.MustFinish,
		ScheduledFinish:   s.Project.ScheduledFinish,
		Start:             s.Start(),
		Finish:            s.Finish(),
		Duration:          s.Duration(),
		RemainingDuration: s.RemainingDuration(),
		PercentComplete:   s.PercentComplete(),
		TaskCounts:        taskCounts,
		TaskTotal:         total,
		LogicCount:        logic,
		LinkCounts:        linkCounts,
		ResourceCount:     len(s.Resources()),
		CalendarCount:     len(s.Calendars()),
		Cost:              s.Cost(),
		UnitQty:           s.UnitQty(),
	}
}
