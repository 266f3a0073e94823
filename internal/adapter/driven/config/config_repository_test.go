package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
regions = ["cn-hangzhou", "cn-beijing"]
lookback_hours = 48
report_name = "nightly_audit"
report_type = ["json", "pdf"]
dir = "/tmp/reports"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cn-hangzhou", "cn-beijing"}, cfg.Regions)
	assert.Equal(t, 48, cfg.LookbackHours)
	assert.Equal(t, "nightly_audit", cfg.ReportName)
	assert.Equal(t, []string{"json", "pdf"}, cfg.ReportType)
	assert.Equal(t, "/tmp/reports", cfg.Dir)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
regions:
  - cn-hangzhou
lookback_hours: 12
output: out/audit.json
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cn-hangzhou"}, cfg.Regions)
	assert.Equal(t, 12, cfg.LookbackHours)
	assert.Equal(t, "out/audit.json", cfg.Output)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "regions": ["cn-shanghai"],
  "lookback_hours": 72,
  "report_type": ["csv"]
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cn-shanghai"}, cfg.Regions)
	assert.Equal(t, 72, cfg.LookbackHours)
	assert.Equal(t, []string{"csv"}, cfg.ReportType)
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeTempConfig(t, "config.ini", "[section]"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.Error(t, err)
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv(envAccessKeyID, "LTAI4GExampleKey")
	t.Setenv(envAccessKeySecret, "secret-value")

	repo := NewConfigRepository()
	credentials := repo.LoadCredentials()

	assert.Equal(t, "LTAI4GExampleKey", credentials.AccessKeyID)
	assert.Equal(t, "secret-value", credentials.AccessKeySecret)
	assert.False(t, credentials.IsPlaceholder())
}

func TestLoadCredentialsFallsBackToPlaceholders(t *testing.T) {
	t.Setenv(envAccessKeyID, "")
	t.Setenv(envAccessKeySecret, "")

	repo := NewConfigRepository()
	credentials := repo.LoadCredentials()

	assert.Equal(t, placeholderAccessKeyID, credentials.AccessKeyID)
	assert.Equal(t, placeholderAccessKeySecret, credentials.AccessKeySecret)
	assert.True(t, credentials.IsPlaceholder())
}

func TestDefaultLookbackHours(t *testing.T) {
	repo := NewConfigRepository()

	t.Setenv(envLookbackHours, "")
	assert.Equal(t, 24, repo.DefaultLookbackHours())

	t.Setenv(envLookbackHours, "72")
	assert.Equal(t, 72, repo.DefaultLookbackHours())

	t.Setenv(envLookbackHours, "not-a-number")
	assert.Equal(t, 24, repo.DefaultLookbackHours())

	t.Setenv(envLookbackHours, "-5")
	assert.Equal(t, 24, repo.DefaultLookbackHours())
}
