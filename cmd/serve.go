package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Strava toolset over MCP stdio",
	Long: `Serve exposes every stride tool to an AI assistant over the Model
Context Protocol using stdin/stdout. Point your assistant's MCP
configuration at "stride serve".`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(os.Stderr, dimStyle.Render("stride MCP server listening on stdio"))
	return a.toolServer().Run(cmd.Context())
}
