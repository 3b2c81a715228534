package importer

import (
	"errors"
	"fmt"
	"maps"
)

var requiredTables = []string{TableCalendar, TableProject, TableProjWBS, TableTask, TableTaskPred}

// pairedTables maps a table to the table it depends on.
var pairedTables = []struct{ table, requires string }{
	{TableTaskFin, TableFinDates},
	{TableTrsrcFin, TableFinDates},
	{TableTaskRsrc, TableRsrc},
	{TableTaskMemo, TableMemoType},
	{TableActvCode, TableActvType},
	{TableTaskActv, TableActvCode},
}

var (
	ErrNoExportedProject        = errors.New("no exported project")
	ErrMultipleExportedProjects = errors.New("multiple exported projects")
	ErrUnknownProject           = errors.New("unknown project")
)

// Validate checks the preconditions for building a schedule and returns
// every problem found.
func Validate(tables Tables) []error {
	var errs []error

	for _, name := range requiredTables {
		if !tables.Has(name) {
			errs = append(errs, fmt.Errorf("missing required table %s", name))
		}
	}
	for _, p := range pairedTables {
		if tables.Has(p.table) && !tables.Has(p.requires) {
			errs = append(errs, fmt.Errorf("missing table %s required for table %s", p.requires, p.table))
		}
	}

	if n := len(exportedProjects(tables)); n > 1 {
		errs = append(errs, fmt.Errorf("file contains %d exported schedules, expected 1", n))
	}

	errs = append(errs, validateCalendarCoverage(tables)...)
	return errs
}

func validateCalendarCoverage(tables Tables) []error {
	if !tables.Has(TableTask) || !tables.Has(TableCalendar) {
		return nil
	}
	known := make(map[string]bool, len(tables[TableCalendar]))
	for _, c := range tables[TableCalendar] {
		known[c.String("clndr_id")] = true
	}

	missing := make(map[string]bool)
	affected := 0
	for _, t := range tables[TableTask] {
		id := t.String("clndr_id")
		if !known[id] {
			missing[id] = true
			affected++
		}
	}
	if affected == 0 {
		return nil
	}
	return []error{fmt.Errorf("missing %d calendars assigned to %d tasks", len(missing), affected)}
}

func exportedProjects(tables Tables) []Row {
	var out []Row
	for _, p := range tables[TableProject] {
		if p.Bool("export_flag") {
			out = append(out, p)
		}
	}
	return out
}

// ExportedProjectID returns the id of the single exported project. A file
// with one PROJECT row and no export flags is accepted as that project.
func ExportedProjectID(tables Tables) (string, error) {
	exported := exportedProjects(tables)
	switch {
	case len(exported) == 1:
		return exported[0].String("proj_id"), nil
	case len(exported) > 1:
		return "", fmt.Errorf("%d projects flagged: %w", len(exported), ErrMultipleExportedProjects)
	case len(tables[TableProject]) == 1:
		return tables[TableProject][0].String("proj_id"), nil
	default:
		return "", ErrNoExportedProject
	}
}

// SelectProject returns a copy of tables in which only the project whose id
// or short name equals ref carries the export flag. Standalone databases
// hold every project without flags, so the caller names one.
func SelectProject(tables Tables, ref string) (Tables, error) {
	found := false
	projects := make([]Row, len(tables[TableProject]))
	for i, p := range tables[TableProject] {
		row := maps.Clone(p)
		match := !found && (p.String("proj_id") == ref || p.String("proj_short_name") == ref)
		row["export_flag"] = match
		found = found || match
		projects[i] = row
	}
	if !found {
		return nil, fmt.Errorf("project %q: %w", ref, ErrUnknownProject)
	}

	out := maps.Clone(tables)
	out[TableProject] = projects
	return out, nil
}
