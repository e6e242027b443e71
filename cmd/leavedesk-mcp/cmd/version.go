package cmd

import (
	"fmt"

	"github.com/leavedesk/leavedesk-mcp/pkg/project"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the leavedesk-mcp version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", project.Name, project.Version)
		},
	}
}
