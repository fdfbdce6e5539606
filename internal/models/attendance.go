package models

import "time"

// DateLayout is the calendar day format used across requests, column keys and filenames.
const DateLayout = "2006-01-02"

// Attendance is the presence of one student in one lecture slot.
type Attendance struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"studentId"`
	SubjectID int64     `db:"subject_id" json:"subjectId"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	IsPresent bool      `db:"is_present" json:"isPresent"`
}

// AttendanceKey identifies the single record a mark call may create or overwrite.
type AttendanceKey struct {
	StudentID int64
	SubjectID int64
	Date      time.Time
	Time      string
}

// AttendanceRecord is an attendance row annotated with the student's roll number.
type AttendanceRecord struct {
	StudentID int64     `db:"student_id" json:"studentId"`
	RollNo    int       `db:"roll_no" json:"rollNo"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	IsPresent bool      `db:"is_present" json:"isPresent"`
}

// AttendanceDetail joins attendance with its student and subject for daily reports.
type AttendanceDetail struct {
	Attendance
	Student Student `db:"student" json:"student"`
	Subject Subject `db:"subject" json:"subject"`
}
