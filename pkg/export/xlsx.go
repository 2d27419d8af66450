package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// RosterSheet is the worksheet name of the exported roster
const RosterSheet = "Roster"

// Row is one printable roster line
type Row struct {
	Date        string
	ServiceType string
	Area        string
	Employee    string
	Source      string
}

// BuildWorkbook renders a committed roster as an Excel workbook: one
// row per slot, ordered by date, with weekend rows shaded.
func BuildWorkbook(period string, rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(RosterSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FCE4D6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weekend style: %w", err)
	}

	headers := []string{fmt.Sprintf("Roster %s", period), "Service", "Area", "Assigned", "Source"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(RosterSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(RosterSheet, "A1", "E1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ServiceType < sorted[j].ServiceType
	})

	for i, row := range sorted {
		rowNum := i + 2
		values := []any{row.Date, row.ServiceType, row.Area, row.Employee, row.Source}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(RosterSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
			}
		}

		if date, err := time.Parse("2006-01-02", row.Date); err == nil {
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				start, _ := excelize.CoordinatesToCellName(1, rowNum)
				end, _ := excelize.CoordinatesToCellName(len(values), rowNum)
				if err := f.SetCellStyle(RosterSheet, start, end, weekendStyle); err != nil {
					return nil, fmt.Errorf("failed to style weekend row %d: %w", rowNum, err)
				}
			}
		}
	}

	if err := f.SetColWidth(RosterSheet, "A", "E", 18); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return f, nil
}

// RowsFromAssignments joins committed assignments with their slots and
// employee names into printable rows. Unassigned slots appear with an
// empty employee cell so vacancies stay visible on the sheet.
func RowsFromAssignments(slots []db.DutySlot, assignments []db.Assignment, employees []db.Employee) []Row {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	bySlot := make(map[string]db.Assignment, len(assignments))
	for _, a := range assignments {
		bySlot[a.SlotID] = a
	}

	rows := make([]Row, 0, len(slots))
	for _, slot := range slots {
		row := Row{
			Date:        slot.Date,
			ServiceType: slot.ServiceType,
			Area:        slot.Area,
		}
		if a, ok := bySlot[slot.ID]; ok {
			row.Employee = names[a.EmployeeID]
			if row.Employee == "" {
				row.Employee = a.EmployeeID
			}
			row.Source = a.Source
		}
		rows = append(rows, row)
	}
	return rows
}
