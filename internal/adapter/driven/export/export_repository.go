package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// WriteReportJSON grava o relatório exatamente no caminho informado,
// criando os diretórios intermediários se necessário.
func (r *ExportRepositoryImpl) WriteReportJSON(report entity.Report, outputPath string) (string, error) {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("error creating JSON report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON report: %w", err)
	}

	return filepath.Abs(outputPath)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}
	return r.WriteReportJSON(report, outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Region", "Verification", "Snapshot ID", "Status", "Created (UTC)",
		"Source Disk", "Disk Type", "Source Disk Size (GB)", "Recent",
		"Instance ID", "Instance Name", "All Attached Instances",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, entry := range report.Entries {
		for _, snap := range entry.Snapshots {
			if snap.Error != "" {
				record := []string{entry.Region, entry.BackupVerification.Result, "ERROR: " + snap.Error}
				for len(record) < len(headers) {
					record = append(record, "")
				}
				if err := writer.Write(record); err != nil {
					return "", fmt.Errorf("error writing CSV record: %w", err)
				}
				continue
			}

			record := []string{
				entry.Region,
				entry.BackupVerification.Result,
				snap.SnapshotID,
				snap.Status,
				snap.CreatedUTC,
				snap.SourceDiskID,
				snap.SourceDiskType,
				formatOptionalInt(snap.SourceDiskSizeGB),
				fmt.Sprintf("%t", snap.IsRecent),
				formatOptionalString(snap.InstanceID),
				formatOptionalString(snap.InstanceName),
				strings.Join(snap.AttachedInstanceIDs, "|"),
			}
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, entry := range report.Entries {
		pdf.AddPage()

		// Cabeçalho
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  ECS Backup Audit: %s", entry.Region)), "", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Access Key: %s  |  Generated: %s", report.AccountAccessKeyID, report.GeneratedAtUTC)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		verification := entry.BackupVerification
		summary := fmt.Sprintf(
			"Result: %s\nRecent snapshots: %d\nCutoff (UTC): %s\nLookback window: %d hours",
			strings.ToUpper(verification.Result), verification.RecentSnapshotCount,
			verification.CutoffUTC, verification.LookbackHours,
		)
		if verification.Note != "" {
			summary += "\nNote: " + verification.Note
		}
		drawSection("Backup Verification", summary)

		var b strings.Builder
		for _, snap := range entry.Snapshots {
			if snap.Error != "" {
				b.WriteString(fmt.Sprintf("ERROR: %s\n", snap.Error))
				continue
			}
			recentMark := " "
			if snap.IsRecent {
				recentMark = "*"
			}
			line := fmt.Sprintf("%s %s | %s | %s | disk %s", recentMark, snap.SnapshotID, snap.Status, snap.CreatedUTC, snap.SourceDiskID)
			if snap.InstanceID != nil {
				line += fmt.Sprintf(" -> %s", *snap.InstanceID)
				if snap.InstanceName != nil {
					line += fmt.Sprintf(" (%s)", *snap.InstanceName)
				}
			}
			b.WriteString(line + "\n")
		}
		drawSection(fmt.Sprintf("Snapshots (%d, * = recent)", len(entry.Snapshots)), b.String())

		// Rodapé
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("ECS Backup Auditor | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante
// que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}

func formatOptionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
