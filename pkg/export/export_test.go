package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSheet() Sheet {
	return Sheet{
		Name:    "TY_Database",
		Headers: []string{"Roll No", "Student Name", "2024-01-15 (09:00)"},
		Rows: [][]interface{}{
			{"", "Class: TY", ""},
			{"", "Subject: Database", ""},
			{"", "", ""},
			{1, "John Doe", 1},
			{2, "Jane Smith", "N/A"},
		},
		Widths: []float64{10, 20, 15},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	assert.Equal(t, "text/csv", f.ContentType())

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestSheetValidateRejectsRaggedRows(t *testing.T) {
	sheet := sampleSheet()
	sheet.Rows = append(sheet.Rows, []interface{}{3})
	assert.Error(t, sheet.Validate())

	assert.Error(t, Sheet{}.Validate())
}

func TestXLSXExporterRender(t *testing.T) {
	payload, err := NewXLSXExporter().Render(sampleSheet())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"TY_Database"}, f.GetSheetList())

	rows, err := f.GetRows("TY_Database")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Roll No", "Student Name", "2024-01-15 (09:00)"}, rows[0])
	assert.Equal(t, "Class: TY", rows[1][1])
	assert.Equal(t, "Subject: Database", rows[2][1])
	assert.Equal(t, []string{"1", "John Doe", "1"}, rows[4])
	assert.Equal(t, []string{"2", "Jane Smith", "N/A"}, rows[5])

	width, err := f.GetColWidth("TY_Database", "B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

func TestXLSXExporterRejectsInvalidSheet(t *testing.T) {
	_, err := NewXLSXExporter().Render(Sheet{Headers: []string{"a"}, Rows: [][]interface{}{{1, 2}}})
	assert.Error(t, err)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", SheetName("  "))
	assert.Equal(t, "TY-A_Data", SheetName("TY/A_Data"))
	assert.Len(t, []rune(SheetName(strings.Repeat("x", 40))), 31)
	assert.Equal(t, "TY_Advanced Database Systems I", SheetName("TY_Advanced Database Systems I' Lab"))
	assert.Equal(t, "Sheet1", SheetName("''"))
}

func TestXLSXExporterRenderLongQuotedName(t *testing.T) {
	sheet := sampleSheet()
	sheet.Name = "TY_Advanced Database Systems I' Lab"

	payload, err := NewXLSXExporter().Render(sheet)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"TY_Advanced Database Systems I"}, f.GetSheetList())
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleSheet())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Roll No", "Student Name", "2024-01-15 (09:00)"}, records[0])
	assert.Equal(t, []string{"2", "Jane Smith", "N/A"}, records[5])
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleSheet(), "Attendance TY - Database")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}
