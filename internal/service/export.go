package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/passforge/passforge-go/internal/export"
	"github.com/passforge/passforge-go/internal/model"
)

// ExportService handles password export business logic.
type ExportService struct {
	exporter *export.Exporter
}

// NewExportService creates a new ExportService.
func NewExportService(exporter *export.Exporter) *ExportService {
	return &ExportService{exporter: exporter}
}

// Export renders the passwords for download. Nothing is written server side.
func (s *ExportService) Export(req model.ExportRequest) (model.ExportResponse, error) {
	if len(req.Passwords) > MaxExportPasswords {
		return model.ExportResponse{}, ErrTooManyPasswords
	}

	// One password per line in text exports.
	for i, p := range req.Passwords {
		if strings.IndexFunc(p, unicode.IsControl) >= 0 {
			return model.ExportResponse{}, fmt.Errorf("password %d: %w", i+1, ErrControlCharacter)
		}
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return model.ExportResponse{}, err
	}

	doc, err := s.exporter.Render(req.Passwords, format)
	if err != nil {
		return model.ExportResponse{}, err
	}

	return model.ExportResponse{
		Content:   doc.Content,
		Filename:  doc.Filename,
		MediaType: doc.MediaType,
	}, nil
}
