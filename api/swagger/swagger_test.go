package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Contains(t, parsed.Paths, "/api/attendance/mark")
	assert.Contains(t, parsed.Paths, "/api/auth/login")
}

func TestDocDescribesEnvelopedPayloads(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	for _, path := range []string{
		"/api/attendance/students/{className}",
		"/api/attendance/subjects/{className}",
		"/api/attendance/report",
		"/api/attendance/first-lecture-absentees",
	} {
		assert.Contains(t, parsed.Paths[path]["get"].Description, "data", path)
	}
}
