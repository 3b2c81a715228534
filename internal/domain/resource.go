package domain

import (
	"fmt"
	"time"
)

// Resource is a row of the RSRC table.
type Resource struct {
	ID         string
	Name       string
	ShortName  string
	Type       ResourceType
	CalendarID string
}

// Account is a row of the ACCOUNT (cost account) table.
type Account struct {
	ID        string
	Name      string
	ShortName string
}

// TaskResourceKey identifies a resource assignment across schedules.
type TaskResourceKey struct {
	TaskCode string
	Resource string
	Account  string
}

// TaskResource is a resource assignment on a task.
type TaskResource struct {
	ID           string
	TaskID       string
	TaskCode     string
	ResourceID   string
	ResourceName string
	Type         ResourceType
	CalendarID   string
	AccountID    string
	AccountName  string

	Cost ResourceValues
	Qty  ResourceValues

	LagHrs          float64
	RemainingLagHrs float64

	ActualStart         *time.Time
	ActualFinish        *time.Time
	RemainingStart      *time.Time
	RemainingFinish     *time.Time
	RemainingLateStart  *time.Time
	RemainingLateFinish *time.Time
}

func (r *TaskResource) Key() TaskResourceKey {
	return TaskResourceKey{TaskCode: r.TaskCode, Resource: r.ResourceName, Account: r.AccountName}
}

// Lag is the assignment lag in work days.
func (r *TaskResource) Lag() int {
	return hoursToDays(r.LagHrs)
}

func (r *TaskResource) String() string {
	return fmt.Sprintf("%s | %s", r.TaskCode, r.ResourceName)
}

// FinancialPeriod is a row of FINDATES.
type FinancialPeriod struct {
	ID     string
	Name   string
	Start  time.Time
	Finish time.Time
}

// ResourceFinancial is actual cost and quantity booked against an
// assignment in a past financial period (TRSRCFIN).
type ResourceFinancial struct {
	ID             string
	PeriodID       string
	TaskID         string
	TaskResourceID string
	ActualCost     float64
	ActualQty      float64
}
