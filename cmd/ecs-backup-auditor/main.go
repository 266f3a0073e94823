package main

import (
	"fmt"
	"os"

	"github.com/diillson/ecs-backup-auditor-go/internal/adapter/driven/alicloud"
	"github.com/diillson/ecs-backup-auditor-go/internal/adapter/driven/config"
	"github.com/diillson/ecs-backup-auditor-go/internal/adapter/driven/export"
	"github.com/diillson/ecs-backup-auditor-go/internal/adapter/driving/cli"
	"github.com/diillson/ecs-backup-auditor-go/internal/application/usecase"
	"github.com/diillson/ecs-backup-auditor-go/pkg/console"
	"github.com/diillson/ecs-backup-auditor-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	ecsRepo := alicloud.NewECSRepository(configRepo.LoadCredentials())
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	auditUseCase := usecase.NewAuditUseCase(
		ecsRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetAuditUseCase(auditUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
