package entity

// VerificationSuccess and VerificationFail are the two possible outcomes
// of a region's backup verification.
const (
	VerificationSuccess = "success"
	VerificationFail    = "fail"
)

// TimestampLayout is the UTC timestamp format used throughout the report
// and by the ECS API for snapshot creation times.
const TimestampLayout = "2006-01-02T15:04:05Z"

// SnapshotRecord representa um snapshot enriquecido com as informações de
// attachment do disco de origem. As listas attached_instance_ids e
// attached_instance_names têm sempre o mesmo tamanho e a mesma ordem;
// instance_id/instance_name são o primeiro elemento de cada lista.
type SnapshotRecord struct {
	SnapshotID            string    `json:"snapshot_id"`
	Status                string    `json:"status"`
	CreatedUTC            string    `json:"created_utc"`
	SourceDiskID          string    `json:"source_disk_id"`
	SourceDiskType        string    `json:"source_disk_type"`
	Progress              string    `json:"progress"`
	ProductCode           string    `json:"product_code"`
	Usage                 string    `json:"usage"`
	SourceDiskSizeGB      *int      `json:"source_disk_size_gb"`
	ActualSnapshotSizeGB  *int      `json:"actual_snapshot_size_gb"`
	IsRecent              bool      `json:"is_recent"`
	InstanceID            *string   `json:"instance_id"`
	InstanceName          *string   `json:"instance_name"`
	AttachedInstanceIDs   []string  `json:"attached_instance_ids"`
	AttachedInstanceNames []*string `json:"attached_instance_names"`

	// Error é preenchido apenas no registro sintético que marca uma
	// região cuja listagem falhou.
	Error string `json:"error,omitempty"`
}

// BackupVerification resume a verificação de backup de uma região.
type BackupVerification struct {
	Result              string `json:"result"`
	RecentSnapshotCount int    `json:"recent_snapshot_count"`
	CutoffUTC           string `json:"cutoff_utc"`
	LookbackHours       int    `json:"lookback_hours"`
	Note                string `json:"note,omitempty"`
}

// RegionEntry agrupa os snapshots de uma região com sua verificação.
type RegionEntry struct {
	Region             string             `json:"region"`
	Snapshots          []SnapshotRecord   `json:"snapshots"`
	BackupVerification BackupVerification `json:"backup_verification"`
}

// Report é o documento consolidado de uma execução da auditoria.
// As entradas preservam a ordem das regiões fornecidas pelo chamador.
type Report struct {
	GeneratedAtUTC           string        `json:"generated_at_utc"`
	LookbackHours            int           `json:"lookback_hours"`
	AccountAccessKeyID       string        `json:"account_access_key_id"`
	RegionsCount             int           `json:"regions_count"`
	RegionsWithRecentBackups int           `json:"regions_with_recent_backups"`
	TotalRecentSnapshots     int           `json:"total_recent_snapshots"`
	Entries                  []RegionEntry `json:"entries"`
}

// MaskAccessKey mascara um AccessKey ID para exibição no relatório
// (primeiros 4 + últimos 4 caracteres). Chaves curtas demais viram "***".
func MaskAccessKey(ak string) string {
	if ak == "" {
		return ""
	}
	if len(ak) <= 8 {
		return "***"
	}
	return ak[:4] + "****" + ak[len(ak)-4:]
}
