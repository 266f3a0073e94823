package entity

// SnapshotInfo é o snapshot como devolvido pela API do ECS, antes de
// qualquer enriquecimento. Os campos de tamanho chegam como strings cruas
// porque a API os devolve assim em algumas regiões/versões de SDK; a
// normalização para inteiro acontece no caso de uso.
type SnapshotInfo struct {
	SnapshotID         string
	Status             string
	CreationTime       string
	SourceDiskID       string
	SourceDiskType     string
	Progress           string
	ProductCode        string
	Usage              string
	SourceDiskSize     string
	ActualSnapshotSize string
}

// SnapshotPage é uma página da listagem de snapshots (paginação clássica
// por PageNumber/PageSize com TotalCount).
type SnapshotPage struct {
	TotalCount int
	Snapshots  []SnapshotInfo
}

// DiskAttachment relaciona um disco à instância que o utiliza.
type DiskAttachment struct {
	InstanceID string
}

// DiskInfo descreve um disco e seus attachments. InstanceID é o campo
// direto que algumas versões da API preenchem quando não há lista
// estruturada de attachments.
type DiskInfo struct {
	DiskID      string
	InstanceID  string
	Attachments []DiskAttachment
}

// InstanceInfo descreve uma instância ECS.
type InstanceInfo struct {
	InstanceID   string
	InstanceName string
}
