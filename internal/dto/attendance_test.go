package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequestAcceptsSubjectIDForms(t *testing.T) {
	cases := map[string]NumericID{
		`{"subjectId": 3}`:      3,
		`{"subjectId": "3"}`:    3,
		`{"subjectId": " 12 "}`: 12,
		`{"subjectId": ""}`:     0,
		`{"subjectId": null}`:   0,
		`{}`:                    0,
	}
	for payload, want := range cases {
		var req MarkAttendanceRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req), payload)
		assert.Equal(t, want, req.SubjectID, payload)
	}
}

func TestMarkAttendanceRequestRejectsNonNumericSubjectID(t *testing.T) {
	for _, payload := range []string{`{"subjectId": "db"}`, `{"subjectId": 1.5}`, `{"subjectId": true}`} {
		var req MarkAttendanceRequest
		assert.Error(t, json.Unmarshal([]byte(payload), &req), payload)
	}
}
