package models

// Subject is a course taught to a class.
type Subject struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Class string `db:"class" json:"class"`
}
