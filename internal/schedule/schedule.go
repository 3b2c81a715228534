package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/domain"
	"github.com/jjCode01/xer-pro/internal/importer"
)

// ErrProjectNotFound is returned by Build when no PROJECT row has the id.
var ErrProjectNotFound = errors.New("project not found")

// Schedule owns every entity of one project. Entities refer to each other
// by id; lookups for ids that do not resolve return nil. A Schedule is
// read-only after Build and safe for concurrent readers.
type Schedule struct {
	Project *domain.Project
	Name    string

	calendars     map[string]*calendar.Calendar
	periods       map[string]*domain.FinancialPeriod
	wbs           map[string]*domain.WbsNode
	tasks         map[string]*domain.Task
	taskByCode    map[string]string
	logic         []*domain.Relationship
	resources     map[string]*domain.Resource
	accounts      map[string]*domain.Account
	taskResources map[string]*domain.TaskResource
	financials    map[string]*domain.ResourceFinancial

	successors   map[string][]*domain.Relationship
	predecessors map[string][]*domain.Relationship
}

// Build constructs the schedule for projectID from typed tables. Rows of
// other projects are ignored, as are logic ties that leave the project.
func Build(projectID string, tables importer.Tables) (*Schedule, error) {
	s := &Schedule{
		calendars:     make(map[string]*calendar.Calendar),
		periods:       make(map[string]*domain.FinancialPeriod),
		wbs:           make(map[string]*domain.WbsNode),
		tasks:         make(map[string]*domain.Task),
		taskByCode:    make(map[string]string),
		resources:     make(map[string]*domain.Resource),
		accounts:      make(map[string]*domain.Account),
		taskResources: make(map[string]*domain.TaskResource),
		financials:    make(map[string]*domain.ResourceFinancial),
		successors:    make(map[string][]*domain.Relationship),
		predecessors:  make(map[string][]*domain.Relationship),
	}

	for _, r := range tables[importer.TableProject] {
		if r.String("proj_id") == projectID {
			s.Project = importer.ProjectFromRow(r)
			break
		}
	}
	if s.Project == nil {
		return nil, fmt.Errorf("building schedule %s: %w", projectID, ErrProjectNotFound)
	}
	s.Name = s.Project.ShortName

	for _, r := range tables[importer.TableCalendar] {
		c, err := importer.CalendarFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("building schedule %s: %w", projectID, err)
		}
		s.calendars[c.ID] = c
	}

	for _, r := range tables[importer.TableFinDates] {
		p := importer.FinancialPeriodFromRow(r)
		s.periods[p.ID] = p
	}

	for _, r := range rowsOf(tables, importer.TableProjWBS, projectID) {
		n := importer.WbsFromRow(r)
		s.wbs[n.ID] = n
		if n.IsProjectNode && n.Name != "" {
			s.Name = n.Name
		}
	}

	for _, r := range rowsOf(tables, importer.TableTask, projectID) {
		t := importer.TaskFromRow(r)
		s.tasks[t.ID] = t
		s.taskByCode[t.Code] = t.ID
	}

	s.buildLogic(tables[importer.TableTaskPred], projectID)

	for _, r := range tables[importer.TableRsrc] {
		res := importer.ResourceFromRow(r)
		s.resources[res.ID] = res
	}
	for _, r := range tables[importer.TableAccount] {
		a := importer.AccountFromRow(r)
		s.accounts[a.ID] = a
	}

	for _, r := range rowsOf(tables, importer.TableTaskRsrc, projectID) {
		tr := importer.TaskResourceFromRow(r)
		task := s.tasks[tr.TaskID]
		if task == nil {
			continue
		}
		tr.TaskCode = task.Code
		tr.CalendarID = task.CalendarID
		if res := s.resources[tr.ResourceID]; res != nil {
			tr.ResourceName = res.Name
			if tr.Type == "" {
				tr.Type = res.Type
			}
			if s.calendars[res.CalendarID] != nil {
				tr.CalendarID = res.CalendarID
			}
		}
		if acct := s.accounts[tr.AccountID]; acct != nil {
			tr.AccountName = acct.Name
		}
		s.taskResources[tr.ID] = tr
	}

	for _, r := range tables[importer.TableTrsrcFin] {
		f := importer.ResourceFinancialFromRow(r)
		if s.taskResources[f.TaskResourceID] == nil {
			continue
		}
		s.financials[f.ID] = f
	}

	for _, t := range s.tasks {
		if c := s.calendars[t.CalendarID]; c != nil {
			c.Assignments++
		}
		if n := s.wbs[t.WbsID]; n != nil {
			n.Assignments++
		}
	}
	return s, nil
}

func (s *Schedule) buildLogic(rows []importer.Row, projectID string) {
	for _, r := range rows {
		if r.String("proj_id") != projectID || r.String("pred_proj_id") != projectID {
			continue
		}
		rel := importer.RelationshipFromRow(r)
		pred, succ := s.tasks[rel.PredecessorID], s.tasks[rel.SuccessorID]
		if pred == nil || succ == nil {
			continue
		}
		rel.PredecessorCode, rel.SuccessorCode = pred.Code, succ.Code
		s.logic = append(s.logic, rel)
		s.successors[pred.ID] = append(s.successors[pred.ID], rel)
		s.predecessors[succ.ID] = append(s.predecessors[succ.ID], rel)
	}
	sortLogic(s.logic)
	for _, rels := range s.successors {
		sortLogic(rels)
	}
	for _, rels := range s.predecessors {
		sortLogic(rels)
	}
}

// rowsOf returns the rows of a table that belong to the project.
func rowsOf(tables importer.Tables, table, projectID string) []importer.Row {
	var out []importer.Row
	for _, r := range tables[table] {
		if r.String("proj_id") == projectID {
			out = append(out, r)
		}
	}
	return out
}

func sortLogic(rels []*domain.Relationship) {
	sort.SliceStable(rels, func(i, j int) bool {
		a, b := rels[i], rels[j]
		if a.PredecessorCode != b.PredecessorCode {
			return a.PredecessorCode < b.PredecessorCode
		}
		if a.SuccessorCode != b.SuccessorCode {
			return a.SuccessorCode < b.SuccessorCode
		}
		return a.Link < b.Link
	})
}

// ID returns the project id.
func (s *Schedule) ID() string { return s.Project.ID }

// DataDate returns the date the schedule was last calculated.
func (s *Schedule) DataDate() time.Time { return s.Project.DataDate }

func (s *Schedule) Calendar(id string) *calendar.Calendar { return s.calendars[id] }

// Calendars returns every calendar in the file sorted by name.
func (s *Schedule) Calendars() []*calendar.Calendar {
	out := make([]*calendar.Calendar, 0, len(s.calendars))
	for _, c := range s.calendars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Schedule) Task(id string) *domain.Task { return s.tasks[id] }

func (s *Schedule) TaskByCode(code string) *domain.Task {
	id, ok := s.taskByCode[code]
	if !ok {
		return nil
	}
	return s.tasks[id]
}

func (s *Schedule) WbsNode(id string) *domain.WbsNode { return s.wbs[id] }

// WbsNodes returns every WBS node sorted by path.
func (s *Schedule) WbsNodes() []*domain.WbsNode {
	out := make([]*domain.WbsNode, 0, len(s.wbs))
	paths := make(map[string]string, len(s.wbs))
	for _, n := range s.wbs {
		out = append(out, n)
		paths[n.ID] = s.WbsPathString(n.ID)
	}
	sort.Slice(out, func(i, j int) bool {
		if paths[out[i].ID] != paths[out[j].ID] {
			return paths[out[i].ID] < paths[out[j].ID]
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Schedule) Resource(id string) *domain.Resource { return s.resources[id] }

func (s *Schedule) Account(id string) *domain.Account { return s.accounts[id] }

func (s *Schedule) TaskResource(id string) *domain.TaskResource { return s.taskResources[id] }

// Resources returns the resource assignments sorted by activity code, then
// resource name.
func (s *Schedule) Resources() []*domain.TaskResource {
	out := make([]*domain.TaskResource, 0, len(s.taskResources))
	for _, r := range s.taskResources {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TaskCode != b.TaskCode {
			return a.TaskCode < b.TaskCode
		}
		if a.ResourceName != b.ResourceName {
			return a.ResourceName < b.ResourceName
		}
		return a.ID < b.ID
	})
	return out
}

func (s *Schedule) Period(id string) *domain.FinancialPeriod { return s.periods[id] }

// Periods returns the financial periods ordered by finish date.
func (s *Schedule) Periods() []*domain.FinancialPeriod {
	out := make([]*domain.FinancialPeriod, 0, len(s.periods))
	for _, p := range s.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Finish.Before(out[j].Finish) })
	return out
}

// Financials returns the booked period actuals sorted by id.
func (s *Schedule) Financials() []*domain.ResourceFinancial {
	out := make([]*domain.ResourceFinancial, 0, len(s.financials))
	for _, f := range s.financials {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Order returns the schedule with the later data date first. Ties keep the
// argument order.
func Order(a, b *Schedule) (current, previous *Schedule) {
	if b.DataDate().After(a.DataDate()) {
		return b, a
	}
	return a, b
}
