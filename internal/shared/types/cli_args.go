package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	Regions       []string
	LookbackHours int
	Output        string
	ReportName    string
	ReportType    []string
	Dir           string
}
