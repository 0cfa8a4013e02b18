package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stride/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example config file",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.CreateExample(); err != nil {
		return err
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("stride configured"))
	fmt.Printf("Edit %s/config.toml for preferences.\n", dir)
	fmt.Println("Set STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET and STRAVA_REFRESH_TOKEN in the environment or a .env file.")
	return nil
}
