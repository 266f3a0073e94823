package cli

import (
	"fmt"

	"github.com/diillson/ecs-backup-auditor-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$  /$$$$$$   /$$$$$$        /$$$$$$$                     /$$
        | $$_____/ /$$__  $$ /$$__  $$      | $$__  $$                   | $$
        | $$      | $$  \__/| $$  \__/      | $$  \ $$  /$$$$$$   /$$$$$$| $$   /$$ /$$   /$$  /$$$$$$
        | $$$$$   | $$      |  $$$$$$       | $$$$$$$  |____  $$ /$$_____| $$  /$$/| $$  | $$ /$$__  $$
        | $$__/   | $$       \____  $$      | $$__  $$  /$$$$$$| $$      | $$$$$$/ | $$  | $$| $$  \ $$
        | $$      | $$    $$ /$$  \ $$      | $$  \ $$ /$$__  $$| $$     | $$_  $$ | $$  | $$| $$  | $$
        | $$$$$$$$|  $$$$$$/|  $$$$$$/      | $$$$$$$/|  $$$$$$$|  $$$$$$| $$ \  $$|  $$$$$$$| $$$$$$$/
        |________/ \______/  \______/       |_______/  \_______/ \_______|__/  \__/ \______/ | $$____/
                                                                                             | $$
                                                                                             |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("ECS Backup Auditor CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
