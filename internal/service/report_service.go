package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
	"github.com/noah-isme/attendance-tracker-api/pkg/export"
)

const (
	rollNoHeader      = "Roll No"
	studentNameHeader = "Student Name"

	rollNoWidth      = 10
	studentNameWidth = 20
	slotColumnWidth  = 15
)

type sheetRenderer interface {
	Render(data export.Sheet) ([]byte, error)
}

type titledSheetRenderer interface {
	Render(data export.Sheet, title string) ([]byte, error)
}

// RenderedReport is a document ready to be served as a download.
type RenderedReport struct {
	Filename    string
	ContentType string
	Format      export.Format
	Payload     []byte
}

// ReportService renders attendance matrices into downloadable documents.
type ReportService struct {
	xlsx          sheetRenderer
	csv           sheetRenderer
	pdf           titledSheetRenderer
	defaultFormat export.Format
	metrics       *MetricsService
	logger        *zap.Logger
	now           func() time.Time
}

// NewReportService constructs a ReportService. An invalid default format falls back to xlsx.
func NewReportService(defaultFormat string, metrics *MetricsService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	format, err := export.ParseFormat(defaultFormat)
	if err != nil {
		logger.Warn("unknown default report format, using xlsx", zap.String("format", defaultFormat))
		format = export.FormatXLSX
	}
	return &ReportService{
		xlsx:          export.NewXLSXExporter(),
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		defaultFormat: format,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

// RenderMatrix serialises the matrix in the requested format. An empty format uses the default.
func (s *ReportService) RenderMatrix(matrix models.AttendanceMatrix, className, subjectName, format string) (*RenderedReport, error) {
	chosen := s.defaultFormat
	if strings.TrimSpace(format) != "" {
		parsed, err := export.ParseFormat(format)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported report format")
		}
		chosen = parsed
	}
	if err := matrix.Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed attendance matrix")
	}

	sheet := BuildAttendanceSheet(matrix, className, subjectName)

	start := time.Now()
	var (
		payload []byte
		err     error
	)
	switch chosen {
	case export.FormatCSV:
		payload, err = s.csv.Render(sheet)
	case export.FormatPDF:
		payload, err = s.pdf.Render(sheet, fmt.Sprintf("Attendance %s - %s", className, subjectName))
	default:
		payload, err = s.xlsx.Render(sheet)
	}
	s.metrics.ObserveReportRender(string(chosen), time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render attendance report")
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s.%s", className, subjectName, s.now().Format(models.DateLayout), chosen)
	s.logger.Debug("attendance report rendered",
		zap.String("filename", filename),
		zap.Int("rows", len(matrix.Rows)),
		zap.Int("columns", len(matrix.Columns)),
		zap.Int("bytes", len(payload)))

	return &RenderedReport{
		Filename:    filename,
		ContentType: chosen.ContentType(),
		Format:      chosen,
		Payload:     payload,
	}, nil
}

// BuildAttendanceSheet lays out the matrix as a table: header row, class and
// subject label rows, a blank spacer, then one row per student.
func BuildAttendanceSheet(matrix models.AttendanceMatrix, className, subjectName string) export.Sheet {
	width := len(matrix.Columns) + 2

	headers := make([]string, 0, width)
	headers = append(headers, rollNoHeader, studentNameHeader)
	widths := []float64{rollNoWidth, studentNameWidth}
	for _, column := range matrix.Columns {
		headers = append(headers, column.Key)
		widths = append(widths, slotColumnWidth)
	}

	label := func(text string) []interface{} {
		row := make([]interface{}, width)
		for i := range row {
			row[i] = ""
		}
		row[1] = text
		return row
	}

	rows := [][]interface{}{
		label("Class: " + className),
		label("Subject: " + subjectName),
		label(""),
	}
	for _, student := range matrix.Rows {
		row := make([]interface{}, 0, width)
		row = append(row, student.RollNo, student.Name)
		for _, cell := range student.Cells {
			row = append(row, cell.Value())
		}
		rows = append(rows, row)
	}

	return export.Sheet{
		Name:    fmt.Sprintf("%s_%s", className, subjectName),
		Headers: headers,
		Rows:    rows,
		Widths:  widths,
	}
}
