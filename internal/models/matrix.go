package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AttendanceCell is the value shown for one student in one lecture column.
type AttendanceCell int8

const (
	CellNotAvailable AttendanceCell = -1
	CellAbsent       AttendanceCell = 0
	CellPresent      AttendanceCell = 1
)

// NotAvailableLabel is rendered when a student has no record for a column.
const NotAvailableLabel = "N/A"

// CellFromPresence converts a stored flag into a cell.
func CellFromPresence(present bool) AttendanceCell {
	if present {
		return CellPresent
	}
	return CellAbsent
}

// Value returns 1, 0 or "N/A" for document rendering.
func (c AttendanceCell) Value() interface{} {
	switch c {
	case CellPresent:
		return 1
	case CellAbsent:
		return 0
	default:
		return NotAvailableLabel
	}
}

// MarshalJSON encodes the cell the same way documents render it.
func (c AttendanceCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// AttendanceColumn is one distinct (date, time) lecture slot.
type AttendanceColumn struct {
	Key  string    `json:"key"`
	Date time.Time `json:"date"`
	Time string    `json:"time"`
}

// AttendanceMatrixRow holds one student's cells aligned with the matrix columns.
type AttendanceMatrixRow struct {
	StudentID int64            `json:"studentId"`
	RollNo    int              `json:"rollNo"`
	Name      string           `json:"name"`
	Cells     []AttendanceCell `json:"cells"`
}

// AttendanceMatrix is the per-student, per-slot attendance table of a class and subject.
type AttendanceMatrix struct {
	Columns []AttendanceColumn    `json:"columns"`
	Rows    []AttendanceMatrixRow `json:"rows"`
}

// Validate reports rows whose cell count differs from the column count.
func (m AttendanceMatrix) Validate() error {
	for _, row := range m.Rows {
		if len(row.Cells) != len(m.Columns) {
			return fmt.Errorf("row for student %d has %d cells, expected %d", row.StudentID, len(row.Cells), len(m.Columns))
		}
	}
	return nil
}
