package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/ecs-backup-auditor-go/internal/domain/repository"
	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	envAccessKeyID     = "MASTER_ACCESS_KEY_ID"
	envAccessKeySecret = "MASTER_ACCESS_KEY_SECRET"
	envLookbackHours   = "LOOKBACK_HOURS"

	placeholderAccessKeyID     = "YOUR_MASTER_AK_ID"
	placeholderAccessKeySecret = "YOUR_MASTER_AK_SECRET"

	defaultLookbackHours = 24
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadCredentials lê o par AK/SK das variáveis de ambiente. Quando ausentes,
// devolve os placeholders para que o chamador possa avisar o usuário.
func (r *ConfigRepositoryImpl) LoadCredentials() types.Credentials {
	return types.Credentials{
		AccessKeyID:     getEnvOrDefault(envAccessKeyID, placeholderAccessKeyID),
		AccessKeySecret: getEnvOrDefault(envAccessKeySecret, placeholderAccessKeySecret),
	}
}

// DefaultLookbackHours devolve a janela padrão em horas, sobrescrevível
// pela variável de ambiente LOOKBACK_HOURS.
func (r *ConfigRepositoryImpl) DefaultLookbackHours() int {
	if value := os.Getenv(envLookbackHours); value != "" {
		if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
			return hours
		}
	}
	return defaultLookbackHours
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
