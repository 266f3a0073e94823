package repository

import (
	"context"

	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
)

// ECSRepository defines the interface for the region-scoped ECS API calls
// the auditor depends on. Any provider with equivalent semantics can
// implement it; tests use in-memory fakes.
type ECSRepository interface {
	// ListSnapshots devolve uma página da listagem de snapshots da região
	// (status "all"), usando paginação por PageNumber/PageSize.
	ListSnapshots(ctx context.Context, region string, pageNumber, pageSize int) (entity.SnapshotPage, error)

	// DescribeDisk consulta um único disco pelo id, incluindo attachments.
	DescribeDisk(ctx context.Context, region, diskID string) (entity.DiskInfo, error)

	// DescribeInstance consulta uma única instância pelo id.
	DescribeInstance(ctx context.Context, region, instanceID string) (entity.InstanceInfo, error)
}
