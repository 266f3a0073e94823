package alicloud

import (
	"context"
	"fmt"
	"sync"

	"github.com/aliyun/alibaba-cloud-sdk-go/sdk/requests"
	"github.com/aliyun/alibaba-cloud-sdk-go/services/ecs"
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/entity"
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/repository"
	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
)

// lookupPageSize é o PageSize usado nas consultas pontuais de disco e
// instância (um único id por chamada).
const lookupPageSize = 10

// ECSRepositoryImpl implementa o ECSRepository com cache de clientes por região.
type ECSRepositoryImpl struct {
	credentials types.Credentials
	clientCache map[string]*ecs.Client
	mu          sync.Mutex
}

// NewECSRepository cria uma nova implementação do ECSRepository usando o
// par AK/SK diretamente (sem STS).
func NewECSRepository(credentials types.Credentials) repository.ECSRepository {
	return &ECSRepositoryImpl{
		credentials: credentials,
		clientCache: make(map[string]*ecs.Client),
	}
}

func (r *ECSRepositoryImpl) getClient(region string) (*ecs.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clientCache[region]; ok {
		return client, nil
	}

	client, err := ecs.NewClientWithAccessKey(region, r.credentials.AccessKeyID, r.credentials.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECS client for region %s: %w", region, err)
	}

	r.clientCache[region] = client
	return client, nil
}

// ListSnapshots devolve uma página da listagem de snapshots da região,
// com status "all" para incluir snapshots em progresso.
func (r *ECSRepositoryImpl) ListSnapshots(ctx context.Context, region string, pageNumber, pageSize int) (entity.SnapshotPage, error) {
	if err := ctx.Err(); err != nil {
		return entity.SnapshotPage{}, err
	}

	client, err := r.getClient(region)
	if err != nil {
		return entity.SnapshotPage{}, err
	}

	request := ecs.CreateDescribeSnapshotsRequest()
	request.Scheme = "https"
	request.Status = "all"
	request.PageSize = requests.NewInteger(pageSize)
	request.PageNumber = requests.NewInteger(pageNumber)

	response, err := client.DescribeSnapshots(request)
	if err != nil {
		return entity.SnapshotPage{}, fmt.Errorf("error listing snapshots in region %s: %w", region, err)
	}

	page := entity.SnapshotPage{
		TotalCount: response.TotalCount,
		Snapshots:  make([]entity.SnapshotInfo, 0, len(response.Snapshots.Snapshot)),
	}
	for _, snap := range response.Snapshots.Snapshot {
		page.Snapshots = append(page.Snapshots, entity.SnapshotInfo{
			SnapshotID:     snap.SnapshotId,
			Status:         snap.Status,
			CreationTime:   snap.CreationTime,
			SourceDiskID:   snap.SourceDiskId,
			SourceDiskType: snap.SourceDiskType,
			Progress:       snap.Progress,
			ProductCode:    snap.ProductCode,
			Usage:          snap.Usage,
			SourceDiskSize: snap.SourceDiskSize,
		})
	}

	return page, nil
}

// DescribeDisk consulta um único disco pelo id. DiskIds é um array JSON
// serializado como string, formato exigido pela API.
func (r *ECSRepositoryImpl) DescribeDisk(ctx context.Context, region, diskID string) (entity.DiskInfo, error) {
	if err := ctx.Err(); err != nil {
		return entity.DiskInfo{}, err
	}

	client, err := r.getClient(region)
	if err != nil {
		return entity.DiskInfo{}, err
	}

	request := ecs.CreateDescribeDisksRequest()
	request.Scheme = "https"
	request.DiskIds = fmt.Sprintf(`["%s"]`, diskID)
	request.PageSize = requests.NewInteger(lookupPageSize)
	request.PageNumber = requests.NewInteger(1)

	response, err := client.DescribeDisks(request)
	if err != nil {
		return entity.DiskInfo{}, fmt.Errorf("error describing disk %s in region %s: %w", diskID, region, err)
	}

	if len(response.Disks.Disk) == 0 {
		return entity.DiskInfo{}, fmt.Errorf("disk %s not found in region %s", diskID, region)
	}

	disk := response.Disks.Disk[0]
	info := entity.DiskInfo{
		DiskID:     disk.DiskId,
		InstanceID: disk.InstanceId,
	}
	for _, attachment := range disk.Attachments.Attachment {
		info.Attachments = append(info.Attachments, entity.DiskAttachment{
			InstanceID: attachment.InstanceId,
		})
	}

	return info, nil
}

// DescribeInstance consulta uma única instância pelo id.
func (r *ECSRepositoryImpl) DescribeInstance(ctx context.Context, region, instanceID string) (entity.InstanceInfo, error) {
	if err := ctx.Err(); err != nil {
		return entity.InstanceInfo{}, err
	}

	client, err := r.getClient(region)
	if err != nil {
		return entity.InstanceInfo{}, err
	}

	request := ecs.CreateDescribeInstancesRequest()
	request.Scheme = "https"
	request.InstanceIds = fmt.Sprintf(`["%s"]`, instanceID)
	request.PageSize = requests.NewInteger(lookupPageSize)
	request.PageNumber = requests.NewInteger(1)

	response, err := client.DescribeInstances(request)
	if err != nil {
		return entity.InstanceInfo{}, fmt.Errorf("error describing instance %s in region %s: %w", instanceID, region, err)
	}

	if len(response.Instances.Instance) == 0 {
		return entity.InstanceInfo{}, fmt.Errorf("instance %s not found in region %s", instanceID, region)
	}

	instance := response.Instances.Instance[0]
	return entity.InstanceInfo{
		InstanceID:   instance.InstanceId,
		InstanceName: instance.InstanceName,
	}, nil
}
