package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stride/internal/analysis"
	"stride/internal/render"
)

var (
	flagNumSessions  int
	flagGoal         string
	flagPlanSessions int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare your recent runs against the preceding ones",
	RunE:  runCompare,
}

var compareDatesCmd = &cobra.Command{
	Use:   "compare-dates <date1> <date2>",
	Short: "Compare two runs head to head by date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompareDates,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get a training plan built from your recent runs",
	RunE:  runRecommend,
}

func init() {
	compareCmd.Flags().IntVarP(&flagNumSessions, "number", "n", 5, "How many recent runs to analyze")
	recommendCmd.Flags().StringVarP(&flagGoal, "goal", "g", "improve_performance",
		"Training goal: improve_performance, increase_distance, improve_pace, build_endurance")
	recommendCmd.Flags().IntVarP(&flagPlanSessions, "number", "n", 10, "How many recent runs to base the plan on (5-30)")
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(compareDatesCmd)
	rootCmd.AddCommand(recommendCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	activities, err := a.client.GetActivities(cmd.Context(), 1, max(flagNumSessions, 30))
	if err != nil {
		return err
	}

	result, err := analysis.CompareSessions(activities, "Run", flagNumSessions)
	if err != nil {
		return analysisErr(err)
	}
	fmt.Println(render.SessionComparison(result))
	return nil
}

func runCompareDates(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	activities, err := a.client.GetActivities(cmd.Context(), 1, 200)
	if err != nil {
		return err
	}

	result, err := analysis.CompareByDate(activities, "Run", args[0], args[1])
	if err != nil {
		return analysisErr(err)
	}
	fmt.Println(render.PairComparison(result))
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	numSessions := min(max(flagPlanSessions, 5), 30)

	activities, err := a.client.GetActivities(cmd.Context(), 1, max(numSessions, 30))
	if err != nil {
		return err
	}

	plan, err := analysis.Recommend(activities, analysis.ParseGoal(flagGoal), numSessions)
	if err != nil {
		return analysisErr(err)
	}
	fmt.Println(render.TrainingPlan(plan))
	return nil
}

// analysisErr strips the stack dressing off expected outcomes so they read
// like a sentence instead of a failure.
func analysisErr(err error) error {
	var insufficient *analysis.InsufficientDataError
	var noSession *analysis.NoSessionError
	if errors.As(err, &insufficient) || errors.As(err, &noSession) {
		fmt.Println(err.Error() + ".")
		return nil
	}
	return err
}
