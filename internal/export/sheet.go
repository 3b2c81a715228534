package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// sheet appends rows to one worksheet. The first error sticks and later
// writes are skipped.
type sheet struct {
	f    *excelize.File
	name string
	row  int
	err  error
}

func newSheet(f *excelize.File, name string) *sheet {
	s := &sheet{f: f, name: name, row: 1}
	if f.GetSheetName(0) == defaultSheet {
		s.err = f.SetSheetName(defaultSheet, name)
		return s
	}
	_, s.err = f.NewSheet(name)
	return s
}

func (s *sheet) write(values ...any) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(s.name, cell, &values); err != nil {
		s.err = fmt.Errorf("writing %s row %d: %w", s.name, s.row, err)
		return
	}
	s.row++
}

func (s *sheet) header(style int, titles ...string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	start := s.row
	s.write(values...)
	if s.err != nil || len(titles) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, start)
	last, _ := excelize.CoordinatesToCellName(len(titles), start)
	s.err = s.f.SetCellStyle(s.name, first, last, style)
}

func (s *sheet) blank() {
	if s.err == nil {
		s.row++
	}
}

func (s *sheet) widths(widths ...float64) {
	for i, w := range widths {
		if s.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			s.err = err
			return
		}
		s.err = s.f.SetColWidth(s.name, col, col, w)
	}
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// valueOrNil keeps missing values as empty cells.
func valueOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
