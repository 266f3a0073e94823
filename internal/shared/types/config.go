package types

import "strings"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Regions       []string `json:"regions" yaml:"regions" toml:"regions"`
	LookbackHours int      `json:"lookback_hours" yaml:"lookback_hours" toml:"lookback_hours"`
	Output        string   `json:"output" yaml:"output" toml:"output"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Credentials é o par AK/SK usado diretamente (sem STS).
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
}

// IsPlaceholder indica que as credenciais ainda são os valores de exemplo
// ("YOUR_..."), ou seja, as variáveis de ambiente não foram definidas.
func (c Credentials) IsPlaceholder() bool {
	return strings.HasPrefix(c.AccessKeyID, "YOUR_") || strings.HasPrefix(c.AccessKeySecret, "YOUR_")
}
