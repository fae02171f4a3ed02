package catalog

// Command is one entry of the operational cheat-sheet.
type Command struct {
	Cmd  string
	Desc string
}

// Step is a quick-start step shown when the manifest supplies none.
type Step struct {
	Step        int
	Title       string
	Description string
}

var commands = []Command{
	{Cmd: "make status", Desc: "Show container status"},
	{Cmd: "make logs", Desc: "View logs (all services)"},
	{Cmd: "make logs s=<service>", Desc: "View logs for specific service"},
	{Cmd: "make monitor", Desc: "Live CPU/memory monitoring"},
	{Cmd: "make restarts", Desc: "Show restart count per container"},
	{Cmd: "make doctor", Desc: "Run system diagnostics"},
	{Cmd: "make update", Desc: "Update system and services"},
	{Cmd: "make update-preview", Desc: "Preview available updates"},
	{Cmd: "make clean", Desc: "Remove unused Docker resources"},
}

var defaultQuickStart = []Step{
	{Step: 1, Title: "Log into n8n", Description: "Use the email you provided during installation"},
	{Step: 2, Title: "Create your first workflow", Description: "Start with a Manual Trigger + HTTP Request nodes"},
	{Step: 3, Title: "Explore community workflows", Description: "Check imported workflows for 300+ examples"},
	{Step: 4, Title: "Monitor your system", Description: "Use Grafana to track performance"},
}

// Commands returns a copy of the cheat-sheet.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// DefaultQuickStart returns a copy of the built-in quick-start steps.
func DefaultQuickStart() []Step {
	out := make([]Step, len(defaultQuickStart))
	copy(out, defaultQuickStart)
	return out
}
