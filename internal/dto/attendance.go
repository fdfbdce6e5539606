package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// NumericID is an identifier sent either as a JSON number or a numeric string.
type NumericID int64

// UnmarshalJSON accepts 7, "7" and null.
func (id *NumericID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*id = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		raw = bytes.TrimSpace([]byte(unquoted))
		if len(raw) == 0 {
			*id = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = NumericID(v)
	return nil
}

// MarkAttendanceRequest is the payload of POST /attendance/mark.
type MarkAttendanceRequest struct {
	Date           string            `json:"date" validate:"required"`
	Time           string            `json:"time" validate:"required"`
	SubjectID      NumericID         `json:"subjectId" validate:"required"`
	ClassName      string            `json:"className" validate:"required"`
	AttendanceData []AttendanceEntry `json:"attendanceData" validate:"required,min=1,dive"`
}

// AttendanceEntry is one student's presence in a mark request.
type AttendanceEntry struct {
	StudentID int64 `json:"studentId" validate:"required"`
	IsPresent *bool `json:"isPresent" validate:"required"`
}

// DailyReportQuery captures the filters of GET /attendance/report.
type DailyReportQuery struct {
	ClassName string `form:"className" validate:"required"`
	Date      string `form:"date" validate:"required"`
}

// FirstLectureAbsenteesResponse lists roll numbers absent from the day's first lecture.
type FirstLectureAbsenteesResponse struct {
	Absentees []int `json:"absentees"`
}
