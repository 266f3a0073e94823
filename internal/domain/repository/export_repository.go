package repository

import (
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
)

type ExportRepository interface {
	// WriteReportJSON grava o relatório exatamente no caminho informado
	// (comportamento do flag --output).
	WriteReportJSON(report entity.Report, outputPath string) (string, error)

	ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.Report, filename, outputDir string) (string, error)
}
