package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceCellJSON(t *testing.T) {
	payload, err := json.Marshal([]AttendanceCell{CellPresent, CellAbsent, CellNotAvailable})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 0, "N/A"]`, string(payload))
}

func TestAttendanceMatrixValidate(t *testing.T) {
	m := AttendanceMatrix{
		Columns: []AttendanceColumn{{Key: "2024-01-10 (09:00)"}},
		Rows:    []AttendanceMatrixRow{{StudentID: 1, Cells: []AttendanceCell{CellPresent}}},
	}
	assert.NoError(t, m.Validate())

	m.Rows = append(m.Rows, AttendanceMatrixRow{StudentID: 2})
	assert.Error(t, m.Validate())
}

func TestTeacherIdentityOmitsHash(t *testing.T) {
	teacher := Teacher{ID: 7, Email: "t@example.com", Name: "T", PasswordHash: "secret"}
	assert.Equal(t, TeacherIdentity{ID: 7, Email: "t@example.com", Name: "T"}, teacher.Identity())

	payload, err := json.Marshal(teacher)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "secret")
}
