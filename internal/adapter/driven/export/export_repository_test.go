package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
)

func sampleReport() entity.Report {
	name := "web-服务器-01"
	instanceID := "i-aaa"
	size := 40

	return entity.Report{
		GeneratedAtUTC:           "2026-08-31T10:00:00Z",
		LookbackHours:            24,
		AccountAccessKeyID:       "LTAI****eKey",
		RegionsCount:             1,
		RegionsWithRecentBackups: 1,
		TotalRecentSnapshots:     1,
		Entries: []entity.RegionEntry{{
			Region: "cn-hangzhou",
			Snapshots: []entity.SnapshotRecord{{
				SnapshotID:            "s-1",
				Status:                "accomplished",
				CreatedUTC:            "2026-08-31T09:00:00Z",
				SourceDiskID:          "d-1",
				SourceDiskType:        "data",
				Progress:              "100%",
				Usage:                 "none",
				SourceDiskSizeGB:      &size,
				IsRecent:              true,
				InstanceID:            &instanceID,
				InstanceName:          &name,
				AttachedInstanceIDs:   []string{"i-aaa"},
				AttachedInstanceNames: []*string{&name},
			}},
			BackupVerification: entity.BackupVerification{
				Result:              entity.VerificationSuccess,
				RecentSnapshotCount: 1,
				CutoffUTC:           "2026-08-30T10:00:00Z",
				LookbackHours:       24,
			},
		}},
	}
}

func TestWriteReportJSON(t *testing.T) {
	repo := NewExportRepository()
	outputPath := filepath.Join(t.TempDir(), "nested", "backup_audit.json")

	writtenPath, err := repo.WriteReportJSON(sampleReport(), outputPath)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(writtenPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "\n  \"generated_at_utc\"", "output is indented")
	assert.Contains(t, content, "web-服务器-01", "multi-byte runes written as UTF-8, not escaped")

	var decoded entity.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleReport(), decoded)
}

func TestExportReportToJSONGeneratesTimestampedName(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	writtenPath, err := repo.ExportReportToJSON(sampleReport(), "audit", dir)
	require.NoError(t, err)

	base := filepath.Base(writtenPath)
	assert.True(t, strings.HasPrefix(base, "audit_"))
	assert.True(t, strings.HasSuffix(base, ".json"))

	_, err = os.Stat(writtenPath)
	assert.NoError(t, err)
}

func TestExportReportToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	report := sampleReport()
	report.Entries = append(report.Entries, entity.RegionEntry{
		Region: "cn-shanghai",
		Snapshots: []entity.SnapshotRecord{{
			Error:                 "cn-shanghai: Throttling",
			AttachedInstanceIDs:   []string{},
			AttachedInstanceNames: []*string{},
		}},
		BackupVerification: entity.BackupVerification{
			Result: entity.VerificationFail,
			Note:   "Query error encountered.",
		},
	})

	writtenPath, err := repo.ExportReportToCSV(report, "audit", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(writtenPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per snapshot record")
	assert.Contains(t, lines[0], "Snapshot ID")
	assert.Contains(t, lines[1], "s-1")
	assert.Contains(t, lines[1], "cn-hangzhou")
	assert.Contains(t, lines[2], "ERROR: cn-shanghai: Throttling")
}

func TestExportReportToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	writtenPath, err := repo.ExportReportToPDF(sampleReport(), "audit", dir)
	require.NoError(t, err)

	info, err := os.Stat(writtenPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.True(t, strings.HasSuffix(writtenPath, ".pdf"))
}
