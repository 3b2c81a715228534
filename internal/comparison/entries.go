package comparison

import (
	"fmt"
	"strings"
	"time"

	"github.com/jjCode01/xer-pro/internal/domain"
)

const dateLayout = "02-Jan-06"

// Entry is one change in text form. Current or Previous is empty when the
// item exists on one side only.
type Entry struct {
	Category Category
	Item     string
	Current  string
	Previous string
}

// Entries flattens the changes in Categories order.
func (c *Changes) Entries() []Entry {
	var out []Entry
	add := func(cat Category, item, cur, prev string) {
		out = append(out, Entry{Category: cat, Item: item, Current: cur, Previous: prev})
	}

	t := c.Tasks
	for _, task := range t.Added {
		add(CategoryAddedTasks, task.Code, task.Name, "")
	}
	for _, task := range t.Deleted {
		add(CategoryDeletedTasks, task.Code, "", task.Name)
	}
	for _, n := range t.Name {
		add(CategoryTaskName, n.Current.Code, n.Current.Name, n.Previous.Name)
	}
	for _, p := range t.OriginalDuration {
		add(CategoryOriginalDuration, p.Current.Code, days(p.Current.OriginalDuration()), days(p.Previous.OriginalDuration()))
	}
	for _, p := range t.RemainingDuration {
		add(CategoryRemainingDuration, p.Current.Code, days(p.Current.RemainingDuration()), days(p.Previous.RemainingDuration()))
	}
	for _, p := range t.ActualStart {
		add(CategoryActualStart, p.Current.Code, date(p.Current.ActualStart), date(p.Previous.ActualStart))
	}
	for _, p := range t.ActualFinish {
		add(CategoryActualFinish, p.Current.Code, date(p.Current.ActualFinish), date(p.Previous.ActualFinish))
	}
	for _, cc := range t.Calendar {
		add(CategoryTaskCalendar, cc.Current.Code, cc.CurrentCalendar, cc.PreviousCalendar)
	}
	for _, m := range t.Wbs {
		add(CategoryTaskWbs, m.Current.Code, m.CurrentPath, m.PreviousPath)
	}
	for _, p := range t.Type {
		add(CategoryTaskType, p.Current.Code, p.Current.Type.String(), p.Previous.Type.String())
	}
	for _, cc := range t.AddedConstraints {
		add(CategoryAddedConstraints, constraintItem(cc), constraint(cc.Current), "")
	}
	for _, cc := range t.DeletedConstraints {
		add(CategoryDeletedConstraints, constraintItem(cc), "", constraint(cc.Previous))
	}
	for _, cc := range t.RevisedConstraints {
		add(CategoryRevisedConstraints, constraintItem(cc), constraint(cc.Current), constraint(cc.Previous))
	}
	for _, task := range t.NewlyStarted {
		add(CategoryNewlyStarted, task.Code, date(task.ActualStart), "")
	}
	for _, task := range t.NewlyFinished {
		add(CategoryNewlyFinished, task.Code, date(task.ActualFinish), "")
	}

	for _, r := range c.Logic.Added {
		add(CategoryAddedLogic, r.String(), "", "")
	}
	for _, r := range c.Logic.Deleted {
		add(CategoryDeletedLogic, r.String(), "", "")
	}
	for _, r := range c.Logic.Revised {
		add(CategoryRevisedLogic, r.Current.PredecessorCode+" -> "+r.Current.SuccessorCode,
			link(r.Current), link(r.Previous))
	}

	for _, r := range c.Resources.Added {
		add(CategoryAddedResources, r.String(), money(r.Cost.Budget), "")
	}
	for _, r := range c.Resources.Deleted {
		add(CategoryDeletedResources, r.String(), "", money(r.Cost.Budget))
	}
	for _, r := range c.Resources.Revised {
		cur, prev := resourceRevision(r)
		add(CategoryRevisedResources, r.Current.String(), cur, prev)
	}

	for _, w := range c.Wbs.Added {
		add(CategoryAddedWbs, w.Path, w.Node.Name, "")
	}
	for _, w := range c.Wbs.Deleted {
		add(CategoryDeletedWbs, w.Path, "", w.Node.Name)
	}
	for _, w := range c.Wbs.Renamed {
		add(CategoryRenamedWbs, w.Path, w.Current.Name, w.Previous.Name)
	}

	for _, cal := range c.Calendars.Added {
		add(CategoryAddedCalendars, cal.Name, string(cal.Type), "")
	}
	for _, cal := range c.Calendars.Deleted {
		add(CategoryDeletedCalendars, cal.Name, "", string(cal.Type))
	}
	for _, d := range c.Calendars.AddedHolidays {
		add(CategoryAddedHolidays, d.Calendar.Name, dates(d.Dates), "")
	}
	for _, d := range c.Calendars.DeletedHolidays {
		add(CategoryDeletedHolidays, d.Calendar.Name, "", dates(d.Dates))
	}
	for _, d := range c.Calendars.AddedExceptions {
		add(CategoryAddedExceptions, d.Calendar.Name, dates(d.Dates), "")
	}
	for _, d := range c.Calendars.DeletedExceptions {
		add(CategoryDeletedExceptions, d.Calendar.Name, "", dates(d.Dates))
	}
	return out
}

func constraintItem(cc ConstraintChange) string {
	return fmt.Sprintf("%s (%s)", cc.Task.Code, cc.Slot)
}

func constraint(c *domain.Constraint) string {
	if c == nil {
		return ""
	}
	return c.String()
}

func link(r *domain.Relationship) string {
	return fmt.Sprintf("%s %d", r.Link, r.Lag())
}

func resourceRevision(r ResourceRevision) (string, string) {
	switch r.Kind {
	case RevisedBudgetCost:
		return money(r.Current.Cost.Budget), money(r.Previous.Cost.Budget)
	case RevisedBudgetQty:
		return qty(r.Current.Qty.Budget), qty(r.Previous.Qty.Budget)
	default:
		return lagHrs(r.Current.RemainingLagHrs), lagHrs(r.Previous.RemainingLagHrs)
	}
}

func days(n int) string       { return fmt.Sprintf("%d d", n) }
func money(v float64) string  { return fmt.Sprintf("%.2f", v) }
func qty(v float64) string    { return fmt.Sprintf("%.2f", v) }
func lagHrs(v float64) string { return fmt.Sprintf("lag %g h", v) }

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func dates(ds []time.Time) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.Format(dateLayout)
	}
	return strings.Join(parts, ", ")
}
