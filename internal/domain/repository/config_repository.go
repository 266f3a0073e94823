package repository

import (
	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files
// and account credentials.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadCredentials() types.Credentials
	DefaultLookbackHours() int
}
