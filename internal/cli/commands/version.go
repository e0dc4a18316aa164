package commands

import "github.com/spf13/cobra"

// Version is set via ldflags at build time.
var Version = "dev"

// setVersion enables the --version flag, printed as "<name> <version>".
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}
