package models

// Student is a learner enrolled in a named class. RollNo is unique within the class.
type Student struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	RollNo int    `db:"roll_no" json:"rollNo"`
	Class  string `db:"class" json:"class"`
}
