package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// slotTimeLayouts are tried in order when reading a lecture time label.
var slotTimeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3 PM", "3PM"}

// MarkedSlot is the lecture submitted by a mark call.
type MarkedSlot struct {
	Date    time.Time
	Time    string
	Entries map[int64]bool
}

// BuildAttendanceMatrix lays out one row per student and one column per
// distinct lecture slot seen in history or in the submitted slot.
func BuildAttendanceMatrix(students []models.Student, history []models.AttendanceRecord, marked MarkedSlot) models.AttendanceMatrix {
	columns := map[string]models.AttendanceColumn{}
	lookup := map[int64]map[string]models.AttendanceCell{}
	set := func(studentID int64, key string, cell models.AttendanceCell) {
		if lookup[studentID] == nil {
			lookup[studentID] = map[string]models.AttendanceCell{}
		}
		lookup[studentID][key] = cell
	}

	markedColumn := newColumn(marked.Date, marked.Time)
	columns[markedColumn.Key] = markedColumn
	for studentID, present := range marked.Entries {
		set(studentID, markedColumn.Key, models.CellFromPresence(present))
	}

	for _, record := range history {
		column := newColumn(record.Date, record.Time)
		columns[column.Key] = column
		set(record.StudentID, column.Key, models.CellFromPresence(record.IsPresent))
	}

	ordered := make([]models.AttendanceColumn, 0, len(columns))
	for _, column := range columns {
		ordered = append(ordered, column)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return compareSlots(ordered[i].Date, ordered[i].Time, ordered[j].Date, ordered[j].Time) < 0
	})

	roster := append([]models.Student(nil), students...)
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].RollNo < roster[j].RollNo
	})

	rows := make([]models.AttendanceMatrixRow, 0, len(roster))
	for _, student := range roster {
		cells := make([]models.AttendanceCell, len(ordered))
		for i, column := range ordered {
			cell, ok := lookup[student.ID][column.Key]
			if !ok {
				cell = models.CellNotAvailable
			}
			cells[i] = cell
		}
		rows = append(rows, models.AttendanceMatrixRow{
			StudentID: student.ID,
			RollNo:    student.RollNo,
			Name:      student.Name,
			Cells:     cells,
		})
	}

	return models.AttendanceMatrix{Columns: ordered, Rows: rows}
}

// ColumnKey renders the display key of a lecture slot, e.g. "2024-01-10 (09:00)".
func ColumnKey(date time.Time, label string) string {
	return fmt.Sprintf("%s (%s)", date.Format(models.DateLayout), label)
}

func newColumn(date time.Time, label string) models.AttendanceColumn {
	day := calendarDay(date)
	return models.AttendanceColumn{Key: ColumnKey(day, label), Date: day, Time: label}
}

// calendarDay drops the clock part keeping the stored calendar date.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// slotMinutes converts a lecture label into minutes after midnight.
func slotMinutes(label string) (int, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for _, layout := range slotTimeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// compareSlots orders slots by day, then time of day. Labels that cannot be
// read as a time sort after readable ones on the same day; remaining ties fall
// back to the raw label.
func compareSlots(dateA time.Time, labelA string, dateB time.Time, labelB string) int {
	dayA, dayB := calendarDay(dateA), calendarDay(dateB)
	if !dayA.Equal(dayB) {
		if dayA.Before(dayB) {
			return -1
		}
		return 1
	}

	minA, okA := slotMinutes(labelA)
	minB, okB := slotMinutes(labelB)
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && minA != minB:
		if minA < minB {
			return -1
		}
		return 1
	}
	return strings.Compare(labelA, labelB)
}

// firstLectureAbsentees picks the earliest slot among the records and returns
// the roll numbers marked absent in it, ascending.
func firstLectureAbsentees(records []models.AttendanceRecord) []int {
	absentees := []int{}
	if len(records) == 0 {
		return absentees
	}

	earliest := records[0]
	for _, record := range records[1:] {
		if compareSlots(record.Date, record.Time, earliest.Date, earliest.Time) < 0 {
			earliest = record
		}
	}

	seen := map[int]struct{}{}
	for _, record := range records {
		if record.Time != earliest.Time || record.IsPresent {
			continue
		}
		if _, ok := seen[record.RollNo]; ok {
			continue
		}
		seen[record.RollNo] = struct{}{}
		absentees = append(absentees, record.RollNo)
	}
	sort.Ints(absentees)
	return absentees
}
