package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
)

type stubConfigRepository struct {
	config *types.Config
}

func (s *stubConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	return s.config, nil
}

func (s *stubConfigRepository) LoadCredentials() types.Credentials {
	return types.Credentials{}
}

func (s *stubConfigRepository) DefaultLookbackHours() int {
	return 24
}

func TestParseArgsDefaults(t *testing.T) {
	app := NewCLIApp("test")
	require.NoError(t, app.rootCmd.ParseFlags(nil))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, []string{"cn-hangzhou", "cn-shanghai"}, args.Regions)
	assert.Equal(t, []string{"json"}, args.ReportType)
	assert.Zero(t, args.LookbackHours)
	assert.NotEmpty(t, args.Dir, "dir defaults to the current working directory")
}

func TestParseArgsExplicitFlags(t *testing.T) {
	app := NewCLIApp("test")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--regions", "cn-beijing",
		"--lookback-hours", "48",
		"--output", "out/audit.json",
		"--report-type", "csv,pdf",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, []string{"cn-beijing"}, args.Regions)
	assert.Equal(t, 48, args.LookbackHours)
	assert.Equal(t, "out/audit.json", args.Output)
	assert.Equal(t, []string{"csv", "pdf"}, args.ReportType)
}

func TestMergeConfigFileFillsUnsetFlagsOnly(t *testing.T) {
	app := NewCLIApp("test")
	app.SetConfigRepository(&stubConfigRepository{config: &types.Config{
		Regions:       []string{"cn-shenzhen"},
		LookbackHours: 72,
		ReportName:    "nightly_audit",
		ReportType:    []string{"pdf"},
	}})

	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--config-file", "config.toml",
		"--lookback-hours", "12",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)
	require.NoError(t, app.mergeConfigFile(args))

	assert.Equal(t, []string{"cn-shenzhen"}, args.Regions, "file value fills the unset flag")
	assert.Equal(t, 12, args.LookbackHours, "explicit flag wins over the file")
	assert.Equal(t, "nightly_audit", args.ReportName)
	assert.Equal(t, []string{"pdf"}, args.ReportType)
}
