package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stride/internal/render"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your Strava profile",
	RunE:  runProfile,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your running and riding totals",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	athlete, err := a.client.GetAthlete(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(render.Profile(athlete))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	athlete, err := a.client.GetAthlete(cmd.Context())
	if err != nil {
		return err
	}
	stats, err := a.client.GetAthleteStats(cmd.Context(), athlete.ID)
	if err != nil {
		return err
	}
	fmt.Println(render.Stats(stats))
	return nil
}
