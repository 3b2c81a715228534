package domain

import "time"

// Project is the PROJECT row of an exported schedule.
type Project struct {
	ID              string
	ShortName       string
	DataDate        time.Time
	PlanStart       *time.Time
	MustFinish      *time.Time
	ScheduledFinish *time.Time
	Exported        bool
}
