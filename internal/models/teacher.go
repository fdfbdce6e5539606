package models

import "time"

// Teacher represents an account allowed to mark attendance.
type Teacher struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// TeacherIdentity is the public view of a teacher attached to authenticated requests.
type TeacherIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Identity strips the credential fields from the teacher.
func (t Teacher) Identity() TeacherIdentity {
	return TeacherIdentity{ID: t.ID, Email: t.Email, Name: t.Name}
}
