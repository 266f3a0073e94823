package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/repository"
	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
)

const snapshotPageSize = 50

// AuditUseCase handles the backup audit functionality.
type AuditUseCase struct {
	ecsRepo    repository.ECSRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewAuditUseCase creates a new audit use case.
func NewAuditUseCase(
	ecsRepo repository.ECSRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *AuditUseCase {
	return &AuditUseCase{
		ecsRepo:    ecsRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// resolverCache memoriza os lookups de disco e instância durante a
// construção de um relatório. Cada BuildReport começa com um cache vazio;
// nada expira dentro de uma execução.
type resolverCache struct {
	diskAttachments map[string][]string // "region:diskId" -> instance ids
	instanceNames   map[string]*string  // "region:instanceId" -> name (nil = ausência resolvida)
}

func newResolverCache() *resolverCache {
	return &resolverCache{
		diskAttachments: make(map[string][]string),
		instanceNames:   make(map[string]*string),
	}
}

// attachedInstanceIDs resolve os IDs das instâncias às quais o disco de
// origem está anexado, deduplicados e em ordem ascendente. Qualquer erro
// de lookup é absorvido: a ausência é cacheada como lista vazia para que
// o disco não seja consultado de novo nesta execução.
func (uc *AuditUseCase) attachedInstanceIDs(
	ctx context.Context,
	cache *resolverCache,
	region string,
	diskID string,
) []string {
	key := region + ":" + diskID
	if ids, ok := cache.diskAttachments[key]; ok {
		return ids
	}

	disk, err := uc.ecsRepo.DescribeDisk(ctx, region, diskID)
	if err != nil {
		cache.diskAttachments[key] = []string{}
		return []string{}
	}

	seen := map[string]bool{}
	ids := []string{}
	for _, attachment := range disk.Attachments {
		if attachment.InstanceID != "" && !seen[attachment.InstanceID] {
			seen[attachment.InstanceID] = true
			ids = append(ids, attachment.InstanceID)
		}
	}
	// Algumas versões da API preenchem apenas o campo direto InstanceId.
	if len(ids) == 0 && disk.InstanceID != "" {
		ids = append(ids, disk.InstanceID)
	}
	sort.Strings(ids)

	cache.diskAttachments[key] = ids
	return ids
}

// instanceName resolve o nome de exibição de uma instância. Nome vazio ou
// erro de lookup viram nil cacheado, distinguindo "resolvido como ausente"
// de "nunca consultado".
func (uc *AuditUseCase) instanceName(
	ctx context.Context,
	cache *resolverCache,
	region string,
	instanceID string,
) *string {
	key := region + ":" + instanceID
	if name, ok := cache.instanceNames[key]; ok {
		return name
	}

	instance, err := uc.ecsRepo.DescribeInstance(ctx, region, instanceID)
	if err != nil || instance.InstanceName == "" {
		cache.instanceNames[key] = nil
		return nil
	}

	name := instance.InstanceName
	cache.instanceNames[key] = &name
	return &name
}

// parseOptionalSize normaliza os campos de tamanho que a API devolve como
// strings cruas. Não numérico ou vazio vira nil, nunca erro.
func parseOptionalSize(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &value
}

// auditRegion audita uma região e nunca devolve erro: falhas de listagem
// ou de parse de timestamp produzem uma entrada degradada com um único
// registro marcador, sem afetar as demais regiões.
func (uc *AuditUseCase) auditRegion(
	ctx context.Context,
	cache *resolverCache,
	region string,
	lookbackHours int,
) entity.RegionEntry {
	cutoff := time.Now().UTC().Add(-time.Duration(lookbackHours) * time.Hour)

	records, err := uc.collectRegionSnapshots(ctx, cache, region, cutoff)
	if err != nil {
		return degradedRegionEntry(region, err, cutoff, lookbackHours)
	}

	recentCount := 0
	for _, record := range records {
		if record.IsRecent {
			recentCount++
		}
	}

	result := entity.VerificationFail
	if recentCount > 0 {
		result = entity.VerificationSuccess
	}

	return entity.RegionEntry{
		Region:    region,
		Snapshots: records,
		BackupVerification: entity.BackupVerification{
			Result:              result,
			RecentSnapshotCount: recentCount,
			CutoffUTC:           cutoff.Format(entity.TimestampLayout),
			LookbackHours:       lookbackHours,
		},
	}
}

// collectRegionSnapshots pagina a listagem de snapshots da região e
// enriquece cada um com os attachments do disco de origem.
func (uc *AuditUseCase) collectRegionSnapshots(
	ctx context.Context,
	cache *resolverCache,
	region string,
	cutoff time.Time,
) ([]entity.SnapshotRecord, error) {
	records := []entity.SnapshotRecord{}

	for page := 1; ; page++ {
		result, err := uc.ecsRepo.ListSnapshots(ctx, region, page, snapshotPageSize)
		if err != nil {
			return nil, err
		}

		for _, snapshot := range result.Snapshots {
			record, err := uc.buildSnapshotRecord(ctx, cache, region, snapshot, cutoff)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}

		maxPage := int(math.Ceil(float64(result.TotalCount) / float64(snapshotPageSize)))
		if page >= maxPage || len(result.Snapshots) == 0 {
			break
		}
	}

	return records, nil
}

func (uc *AuditUseCase) buildSnapshotRecord(
	ctx context.Context,
	cache *resolverCache,
	region string,
	snapshot entity.SnapshotInfo,
	cutoff time.Time,
) (entity.SnapshotRecord, error) {
	createdAt, err := time.Parse(entity.TimestampLayout, snapshot.CreationTime)
	if err != nil {
		return entity.SnapshotRecord{}, fmt.Errorf("parsing creation time of snapshot %s: %w", snapshot.SnapshotID, err)
	}

	record := entity.SnapshotRecord{
		SnapshotID:            snapshot.SnapshotID,
		Status:                snapshot.Status,
		CreatedUTC:            snapshot.CreationTime,
		SourceDiskID:          snapshot.SourceDiskID,
		SourceDiskType:        snapshot.SourceDiskType,
		Progress:              snapshot.Progress,
		ProductCode:           snapshot.ProductCode,
		Usage:                 snapshot.Usage,
		SourceDiskSizeGB:      parseOptionalSize(snapshot.SourceDiskSize),
		ActualSnapshotSizeGB:  parseOptionalSize(snapshot.ActualSnapshotSize),
		IsRecent:              createdAt.After(cutoff),
		AttachedInstanceIDs:   []string{},
		AttachedInstanceNames: []*string{},
	}

	if snapshot.SourceDiskID != "" {
		ids := uc.attachedInstanceIDs(ctx, cache, region, snapshot.SourceDiskID)
		names := make([]*string, 0, len(ids))
		for _, id := range ids {
			names = append(names, uc.instanceName(ctx, cache, region, id))
		}
		record.AttachedInstanceIDs = ids
		record.AttachedInstanceNames = names
		if len(ids) > 0 {
			record.InstanceID = &ids[0]
			record.InstanceName = names[0]
		}
	}

	return record, nil
}

func degradedRegionEntry(region string, err error, cutoff time.Time, lookbackHours int) entity.RegionEntry {
	marker := entity.SnapshotRecord{
		Error:                 fmt.Sprintf("%s: %s", region, err),
		AttachedInstanceIDs:   []string{},
		AttachedInstanceNames: []*string{},
	}
	return entity.RegionEntry{
		Region:    region,
		Snapshots: []entity.SnapshotRecord{marker},
		BackupVerification: entity.BackupVerification{
			Result:              entity.VerificationFail,
			RecentSnapshotCount: 0,
			CutoffUTC:           cutoff.Format(entity.TimestampLayout),
			LookbackHours:       lookbackHours,
			Note:                "Query error encountered.",
		},
	}
}

// BuildReport audita as regiões em sequência, na ordem fornecida, e monta
// o relatório consolidado. Nenhum erro escapa: no pior caso o relatório
// contém apenas entradas degradadas, mas ainda é exportável.
func (uc *AuditUseCase) BuildReport(
	ctx context.Context,
	regions []string,
	lookbackHours int,
	accessKeyID string,
) entity.Report {
	cache := newResolverCache()

	entries := make([]entity.RegionEntry, 0, len(regions))
	totalRecent := 0
	regionsWithRecent := 0

	progress := uc.console.ProgressWithTotal(len(regions))
	defer progress.Stop()

	for _, region := range regions {
		uc.console.LogInfo("Checking region %s...", region)
		entry := uc.auditRegion(ctx, cache, region, lookbackHours)
		progress.Increment()
		entries = append(entries, entry)

		totalRecent += entry.BackupVerification.RecentSnapshotCount
		if entry.BackupVerification.Result == entity.VerificationSuccess {
			regionsWithRecent++
		}
	}

	return entity.Report{
		GeneratedAtUTC:           time.Now().UTC().Format(entity.TimestampLayout),
		LookbackHours:            lookbackHours,
		AccountAccessKeyID:       entity.MaskAccessKey(accessKeyID),
		RegionsCount:             len(regions),
		RegionsWithRecentBackups: regionsWithRecent,
		TotalRecentSnapshots:     totalRecent,
		Entries:                  entries,
	}
}

// RunAudit executa a auditoria completa a partir dos argumentos da CLI.
func (uc *AuditUseCase) RunAudit(ctx context.Context, args *types.CLIArgs) error {
	regions := args.Regions
	if len(regions) == 0 {
		return types.ErrNoRegionsSpecified
	}

	credentials := uc.configRepo.LoadCredentials()
	if credentials.IsPlaceholder() {
		uc.console.LogWarning("Credentials look like placeholders; API calls will likely fail. Set MASTER_ACCESS_KEY_ID and MASTER_ACCESS_KEY_SECRET.")
	}

	lookbackHours := args.LookbackHours
	if lookbackHours <= 0 {
		lookbackHours = uc.configRepo.DefaultLookbackHours()
	}

	status := uc.console.Status("Auditing snapshot backups...")
	report := uc.BuildReport(ctx, regions, lookbackHours, credentials.AccessKeyID)
	status.Stop()

	uc.displaySummaryTable(report)

	if args.Output != "" {
		jsonPath, err := uc.exportRepo.WriteReportJSON(report, args.Output)
		if err != nil {
			uc.console.LogError("Failed to write JSON report: %s", err)
		} else {
			uc.console.LogSuccess("Backup audit report written to: %s", jsonPath)
		}
		return nil
	}

	reportName := args.ReportName
	if reportName == "" {
		reportName = "ecs_backup_audit"
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "json":
			jsonPath, err := uc.exportRepo.ExportReportToJSON(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "csv":
			csvPath, err := uc.exportRepo.ExportReportToCSV(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		}
	}

	return nil
}

// displaySummaryTable imprime o resumo por região no console.
func (uc *AuditUseCase) displaySummaryTable(report entity.Report) {
	table := uc.console.CreateTable()
	table.AddColumn("Region")
	table.AddColumn("Verification")
	table.AddColumn("Recent Snapshots")
	table.AddColumn("Total Snapshots")

	for _, entry := range report.Entries {
		total := len(entry.Snapshots)
		if total == 1 && entry.Snapshots[0].Error != "" {
			total = 0
		}
		table.AddRow(
			entry.Region,
			entry.BackupVerification.Result,
			fmt.Sprintf("%d", entry.BackupVerification.RecentSnapshotCount),
			fmt.Sprintf("%d", total),
		)
	}

	uc.console.Print(table.Render())
	uc.console.LogInfo(
		"Regions with recent backups: %d/%d (%d recent snapshots, lookback %dh)",
		report.RegionsWithRecentBackups, report.RegionsCount,
		report.TotalRecentSnapshots, report.LookbackHours,
	)
}
