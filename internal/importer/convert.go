package importer

import (
	"fmt"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/domain"
)

// The From*Row functions map typed rows onto domain entities. Absent
// optional fields map to zero values or nil pointers.

func ProjectFromRow(r Row) *domain.Project {
	p := &domain.Project{
		ID:              r.String("proj_id"),
		ShortName:       r.String("proj_short_name"),
		PlanStart:       r.Time("plan_start_date"),
		MustFinish:      r.Time("plan_end_date"),
		ScheduledFinish: r.Time("scd_end_date"),
		Exported:        r.Bool("export_flag"),
	}
	if dd := domain.CoalesceTime(r.Time("last_recalc_date"), r.Time("next_data_date")); dd != nil {
		p.DataDate = *dd
	}
	return p
}

func CalendarFromRow(r Row) (*calendar.Calendar, error) {
	c, err := calendar.New(r.String("clndr_id"), r.String("clndr_name"), r.String("clndr_type"), r.String("clndr_data"))
	if err != nil {
		return nil, fmt.Errorf("converting calendar %s: %w", r.String("clndr_id"), err)
	}
	return c, nil
}

func WbsFromRow(r Row) *domain.WbsNode {
	return &domain.WbsNode{
		ID:            r.String("wbs_id"),
		ParentID:      r.String("parent_wbs_id"),
		ProjectID:     r.String("proj_id"),
		ShortName:     r.String("wbs_short_name"),
		Name:          r.String("wbs_name"),
		IsProjectNode: r.Bool("proj_node_flag"),
	}
}

func TaskFromRow(r Row) *domain.Task {
	return &domain.Task{
		ID:         r.String("task_id"),
		ProjectID:  r.String("proj_id"),
		WbsID:      r.String("wbs_id"),
		CalendarID: r.String("clndr_id"),
		Code:       r.String("task_code"),
		Name:       r.String("task_name"),
		Type:       domain.TaskType(r.String("task_type")),
		Status:     domain.TaskStatus(r.String("status_code")),

		PercentType: domain.PercentType(r.String("complete_pct_type")),
		PhysicalPct: r.Float("phys_complete_pct"),

		OriginalDurationHrs:  r.Float("target_drtn_hr_cnt"),
		RemainingDurationHrs: r.Float("remain_drtn_hr_cnt"),
		TotalFloatHrs:        r.FloatPtr("total_float_hr_cnt"),
		FreeFloatHrs:         r.FloatPtr("free_float_hr_cnt"),

		ActualWorkQty:    r.Float("act_work_qty"),
		RemainingWorkQty: r.Float("remain_work_qty"),

		ActualStart:     r.Time("act_start_date"),
		ActualFinish:    r.Time("act_end_date"),
		EarlyStart:      r.Time("early_start_date"),
		EarlyFinish:     r.Time("early_end_date"),
		LateStart:       r.Time("late_start_date"),
		LateFinish:      r.Time("late_end_date"),
		RemainingStart:  r.Time("restart_date"),
		RemainingFinish: r.Time("reend_date"),
		TargetStart:     r.Time("target_start_date"),
		TargetFinish:    r.Time("target_end_date"),

		PrimaryConstraint:   constraintFromRow(r, "cstr_type", "cstr_date"),
		SecondaryConstraint: constraintFromRow(r, "cstr_type2", "cstr_date2"),

		LongestPath: r.Bool("driving_path_flag"),
	}
}

func constraintFromRow(r Row, typeField, dateField string) *domain.Constraint {
	ct := r.String(typeField)
	if ct == "" {
		return nil
	}
	return &domain.Constraint{Type: domain.ConstraintType(ct), Date: r.Time(dateField)}
}

// RelationshipFromRow leaves the activity codes empty; the schedule fills
// them in once both tasks are resolved.
func RelationshipFromRow(r Row) *domain.Relationship {
	return &domain.Relationship{
		ID:            r.String("task_pred_id"),
		PredecessorID: r.String("pred_task_id"),
		SuccessorID:   r.String("task_id"),
		Link:          domain.ParseLinkType(r.String("pred_type")),
		LagHrs:        r.Float("lag_hr_cnt"),
	}
}

func ResourceFromRow(r Row) *domain.Resource {
	return &domain.Resource{
		ID:         r.String("rsrc_id"),
		Name:       domain.CoalesceStr(r.String("rsrc_name"), r.String("rsrc_short_name")),
		ShortName:  r.String("rsrc_short_name"),
		Type:       domain.ResourceType(r.String("rsrc_type")),
		CalendarID: r.String("clndr_id"),
	}
}

func AccountFromRow(r Row) *domain.Account {
	return &domain.Account{
		ID:        r.String("acct_id"),
		Name:      r.String("acct_name"),
		ShortName: r.String("acct_short_name"),
	}
}

// TaskResourceFromRow leaves task, resource and account names empty for
// the schedule to resolve.
func TaskResourceFromRow(r Row) *domain.TaskResource {
	return &domain.TaskResource{
		ID:         r.String("taskrsrc_id"),
		TaskID:     r.String("task_id"),
		ResourceID: r.String("rsrc_id"),
		Type:       domain.ResourceType(r.String("rsrc_type")),
		AccountID:  r.String("acct_id"),

		Cost: domain.NewResourceValues(
			r.Float("target_cost"),
			r.Float("act_reg_cost")+r.Float("act_ot_cost"),
			r.Float("act_this_per_cost"),
			r.Float("remain_cost"),
		),
		Qty: domain.NewResourceValues(
			r.Float("target_qty"),
			r.Float("act_reg_qty")+r.Float("act_ot_qty"),
			r.Float("act_this_per_qty"),
			r.Float("remain_qty"),
		),

		LagHrs:          r.Float("target_lag_drtn_hr_cnt"),
		RemainingLagHrs: r.Float("relag_drtn_hr_cnt"),

		ActualStart:         r.Time("act_start_date"),
		ActualFinish:        r.Time("act_end_date"),
		RemainingStart:      r.Time("restart_date"),
		RemainingFinish:     r.Time("reend_date"),
		RemainingLateStart:  r.Time("rem_late_start_date"),
		RemainingLateFinish: r.Time("rem_late_end_date"),
	}
}

func FinancialPeriodFromRow(r Row) *domain.FinancialPeriod {
	p := &domain.FinancialPeriod{
		ID:   r.String("fin_dates_id"),
		Name: r.String("fin_dates_name"),
	}
	if t := r.Time("start_date"); t != nil {
		p.Start = *t
	}
	if t := r.Time("end_date"); t != nil {
		p.Finish = *t
	}
	return p
}

func ResourceFinancialFromRow(r Row) *domain.ResourceFinancial {
	return &domain.ResourceFinancial{
		ID:             r.String("fin_dates_id") + ":" + r.String("taskrsrc_id"),
		PeriodID:       r.String("fin_dates_id"),
		TaskID:         r.String("task_id"),
		TaskResourceID: r.String("taskrsrc_id"),
		ActualCost:     r.Float("act_cost"),
		ActualQty:      r.Float("act_qty"),
	}
}
