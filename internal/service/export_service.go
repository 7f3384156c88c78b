package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/export"
)

// ExportFormat identifies a supported export rendering.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered document and its serving metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportConfig bounds moderation exports.
type ExportConfig struct {
	Enabled bool
	MaxRows int
}

// ExportService renders the moderation view as downloadable reports.
type ExportService struct {
	moderation *ModerationService
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	config     ExportConfig
	logger     *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(moderation *ModerationService, config ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		moderation: moderation,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		config:     config,
		logger:     logger,
	}
}

var exportHeaders = []string{"Type", "ID", "Title", "Author", "Status", "Created"}

// ContentReport renders the current moderation view in the requested format.
func (s *ExportService) ContentReport(ctx context.Context, filter models.ContentFilter, format ExportFormat) (*ExportResult, error) {
	if !s.config.Enabled {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled")
	}

	maxRows := s.config.MaxRows
	if maxRows <= 0 || maxRows > 100 {
		maxRows = 100
	}
	filter.Limit = maxRows
	filter.Offset = 0

	list, err := s.moderation.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: exportHeaders}
	for _, item := range list.Items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Type":    string(item.ContentType),
			"ID":      item.ID,
			"Title":   item.Title,
			"Author":  item.AuthorName,
			"Status":  item.Status,
			"Created": item.CreatedAt.Format(time.RFC3339),
		})
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("content-report-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, "Content Moderation Report")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("content-report-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
