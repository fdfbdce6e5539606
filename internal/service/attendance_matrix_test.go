package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

func day(raw string) time.Time {
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		panic(err)
	}
	return t
}

func columnKeys(m models.AttendanceMatrix) []string {
	keys := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		keys[i] = c.Key
	}
	return keys
}

func TestBuildAttendanceMatrixSingleSubmission(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "John Doe", RollNo: 1, Class: "TY"},
		{ID: 2, Name: "Jane Smith", RollNo: 2, Class: "TY"},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "09:00", Entries: map[int64]bool{1: true, 2: false}}

	m := BuildAttendanceMatrix(students, nil, marked)

	assert.Equal(t, []string{"2024-01-10 (09:00)"}, columnKeys(m))
	require.Len(t, m.Rows, 2)
	assert.Equal(t, []models.AttendanceCell{models.CellPresent}, m.Rows[0].Cells)
	assert.Equal(t, []models.AttendanceCell{models.CellAbsent}, m.Rows[1].Cells)
	assert.NoError(t, m.Validate())
}

func TestBuildAttendanceMatrixFillsNotAvailable(t *testing.T) {
	students := []models.Student{
		{ID: 1, Name: "John Doe", RollNo: 1},
		{ID: 6, Name: "New Student", RollNo: 6},
	}
	history := []models.AttendanceRecord{
		{StudentID: 1, RollNo: 1, Date: day("2024-01-09"), Time: "09:00", IsPresent: true},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "09:00", Entries: map[int64]bool{1: false, 6: true}}

	m := BuildAttendanceMatrix(students, history, marked)

	assert.Equal(t, []string{"2024-01-09 (09:00)", "2024-01-10 (09:00)"}, columnKeys(m))
	assert.Equal(t, []models.AttendanceCell{models.CellPresent, models.CellAbsent}, m.Rows[0].Cells)
	assert.Equal(t, []models.AttendanceCell{models.CellNotAvailable, models.CellPresent}, m.Rows[1].Cells)
}

func TestBuildAttendanceMatrixNewStudentDoesNotBackfillOthers(t *testing.T) {
	students := []models.Student{{ID: 1, Name: "John Doe", RollNo: 1}}
	history := []models.AttendanceRecord{
		{StudentID: 9, RollNo: 9, Date: day("2024-01-08"), Time: "10:00", IsPresent: true},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "09:00", Entries: map[int64]bool{1: true}}

	m := BuildAttendanceMatrix(students, history, marked)

	require.Len(t, m.Rows, 1)
	assert.Equal(t, []models.AttendanceCell{models.CellNotAvailable, models.CellPresent}, m.Rows[0].Cells)
}

func TestBuildAttendanceMatrixOrdersRowsByRollNo(t *testing.T) {
	students := []models.Student{
		{ID: 3, Name: "Alice Johnson", RollNo: 3},
		{ID: 1, Name: "John Doe", RollNo: 1},
		{ID: 2, Name: "Jane Smith", RollNo: 2},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "09:00", Entries: map[int64]bool{1: true, 2: true, 3: true}}

	m := BuildAttendanceMatrix(students, nil, marked)

	var rolls []int
	for _, row := range m.Rows {
		rolls = append(rolls, row.RollNo)
	}
	assert.Equal(t, []int{1, 2, 3}, rolls)
}

func TestBuildAttendanceMatrixOrdersColumnsChronologically(t *testing.T) {
	students := []models.Student{{ID: 1, RollNo: 1}}
	history := []models.AttendanceRecord{
		{StudentID: 1, Date: day("2024-01-10"), Time: "2:00 PM", IsPresent: true},
		{StudentID: 1, Date: day("2024-01-10"), Time: "9:00 AM", IsPresent: true},
		{StudentID: 1, Date: day("2024-01-10"), Time: "lab", IsPresent: true},
		{StudentID: 1, Date: day("2024-01-09"), Time: "16:00", IsPresent: true},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "11:00", Entries: map[int64]bool{1: false}}

	m := BuildAttendanceMatrix(students, history, marked)

	assert.Equal(t, []string{
		"2024-01-09 (16:00)",
		"2024-01-10 (9:00 AM)",
		"2024-01-10 (11:00)",
		"2024-01-10 (2:00 PM)",
		"2024-01-10 (lab)",
	}, columnKeys(m))
}

func TestBuildAttendanceMatrixRepeatedSubmissionKeepsOneColumn(t *testing.T) {
	students := []models.Student{{ID: 1, RollNo: 1}}
	history := []models.AttendanceRecord{
		{StudentID: 1, RollNo: 1, Date: day("2024-01-10"), Time: "09:00", IsPresent: false},
	}
	marked := MarkedSlot{Date: day("2024-01-10"), Time: "09:00", Entries: map[int64]bool{1: false}}

	m := BuildAttendanceMatrix(students, history, marked)

	assert.Len(t, m.Columns, 1)
	assert.Equal(t, []models.AttendanceCell{models.CellAbsent}, m.Rows[0].Cells)
}

func TestSlotMinutes(t *testing.T) {
	cases := map[string]int{
		"09:00":    540,
		"9:00":     540,
		"13:30:15": 810,
		"1:30 PM":  810,
		"1:30pm":   810,
		"11 AM":    660,
		"3PM":      900,
	}
	for label, expected := range cases {
		minutes, ok := slotMinutes(label)
		assert.True(t, ok, label)
		assert.Equal(t, expected, minutes, label)
	}

	_, ok := slotMinutes("after lunch")
	assert.False(t, ok)
}

func TestFirstLectureAbsentees(t *testing.T) {
	date := day("2024-01-10")
	records := []models.AttendanceRecord{
		{StudentID: 3, RollNo: 3, Date: date, Time: "11:00", IsPresent: false},
		{StudentID: 2, RollNo: 2, Date: date, Time: "09:00", IsPresent: false},
		{StudentID: 1, RollNo: 1, Date: date, Time: "09:00", IsPresent: true},
		{StudentID: 4, RollNo: 4, Date: date, Time: "09:00", IsPresent: false},
	}
	assert.Equal(t, []int{2, 4}, firstLectureAbsentees(records))
}

func TestFirstLectureAbsenteesTwelveHourLabels(t *testing.T) {
	date := day("2024-01-10")
	records := []models.AttendanceRecord{
		{RollNo: 1, Date: date, Time: "11:00 AM", IsPresent: false},
		{RollNo: 2, Date: date, Time: "9:00 AM", IsPresent: false},
	}
	assert.Equal(t, []int{2}, firstLectureAbsentees(records))
}

func TestFirstLectureAbsenteesEmpty(t *testing.T) {
	absentees := firstLectureAbsentees(nil)
	assert.NotNil(t, absentees)
	assert.Empty(t, absentees)
}
