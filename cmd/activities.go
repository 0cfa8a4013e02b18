package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"stride/internal/render"
)

var flagPerPage int

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List your recent activities",
	RunE:  runActivities,
}

var activityCmd = &cobra.Command{
	Use:   "activity <id>",
	Short: "Show the detail of one activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivity,
}

func init() {
	activitiesCmd.Flags().IntVarP(&flagPerPage, "number", "n", 0, "How many activities to list (default from config)")
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(activityCmd)
}

func runActivities(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	perPage := flagPerPage
	if perPage <= 0 {
		perPage = a.cfg.Fetch.PerPage
	}

	activities, err := a.client.GetActivities(cmd.Context(), 1, perPage)
	if err != nil {
		return err
	}
	if err := a.store.ReplaceRecent(activities); err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("warning: caching activities failed: "+err.Error()))
	}

	fmt.Println(render.Activities(activities))
	printRateLimit(a)
	return nil
}

func runActivity(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid activity id %q", args[0])
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	activity, err := a.client.GetActivity(cmd.Context(), id)
	if err != nil {
		return err
	}
	mapURL := render.MapURL(activity.Map.Best(), a.cfg.Maps.APIKey, a.cfg.Maps.Size)
	fmt.Println(render.ActivityDetail(activity, mapURL))
	return nil
}

func printRateLimit(a *app) {
	short, daily := a.client.RateLimitStatus()
	if short >= 0 && daily >= 0 {
		fmt.Fprintln(os.Stderr, dimStyle.Render(
			fmt.Sprintf("rate limit: %d requests left (15 min), %d today", short, daily)))
	}
}
