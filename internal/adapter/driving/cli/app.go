package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/ecs-backup-auditor-go/pkg/version"

	"github.com/diillson/ecs-backup-auditor-go/internal/application/usecase"
	"github.com/diillson/ecs-backup-auditor-go/internal/domain/repository"
	"github.com/diillson/ecs-backup-auditor-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	auditUseCase *usecase.AuditUseCase
	configRepo   repository.ConfigRepository
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "ecs-backup-auditor",
		Short:   "ECS Backup Auditor CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "ECS Backup Auditor version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("regions", "r", []string{"cn-hangzhou", "cn-shanghai"}, "ECS regions to audit for snapshot backups (comma-separated)")
	rootCmd.PersistentFlags().IntP("lookback-hours", "l", 0, "Recency window in hours (default: LOOKBACK_HOURS env, else 24)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write the JSON report to this exact path (overrides --report-name/--dir/--report-type)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"json"}, "Specify report types: json, csv, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	regions, _ := app.rootCmd.Flags().GetStringSlice("regions")
	lookbackHours, _ := app.rootCmd.Flags().GetInt("lookback-hours")
	output, _ := app.rootCmd.Flags().GetString("output")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Regions:       regions,
		LookbackHours: lookbackHours,
		Output:        output,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
	}

	return args, nil
}

// mergeConfigFile preenche com valores do arquivo de configuração os
// campos que o usuário não definiu explicitamente na linha de comando.
func (app *CLIApp) mergeConfigFile(args *types.CLIArgs) error {
	cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	flags := app.rootCmd.Flags()
	if !flags.Changed("regions") && len(cfg.Regions) > 0 {
		args.Regions = cfg.Regions
	}
	if !flags.Changed("lookback-hours") && cfg.LookbackHours > 0 {
		args.LookbackHours = cfg.LookbackHours
	}
	if !flags.Changed("output") && cfg.Output != "" {
		args.Output = cfg.Output
	}
	if !flags.Changed("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !flags.Changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !flags.Changed("dir") && cfg.Dir != "" {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return err
		}
		args.Dir = absDir
	}

	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.ConfigFile != "" {
		if err := app.mergeConfigFile(cliArgs); err != nil {
			return err
		}
	}

	ctx := context.Background()
	return app.auditUseCase.RunAudit(ctx, cliArgs)
}

// SetAuditUseCase sets the audit use case for the CLI app.
func (app *CLIApp) SetAuditUseCase(useCase *usecase.AuditUseCase) {
	app.auditUseCase = useCase
}

// SetConfigRepository sets the configuration repository for the CLI app.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}
