package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/daemon"
	"github.com/bunkeboy/landlord/internal/domain"
)

func init() {
	goalSetCmd.Flags().IntVar(&goalYear, "year", time.Now().Year(), "Goal year")
	goalSetCmd.Flags().Float64Var(&goalGCI, "gci", 0, "Annual gross commission income target")
	goalSetCmd.Flags().Float64Var(&goalVolume, "volume", 0, "Annual sales volume target")
	goalSetCmd.Flags().IntVar(&goalTransactions, "transactions", 0, "Annual transaction count target")
	goalShowCmd.Flags().IntVar(&goalYear, "year", time.Now().Year(), "Goal year")
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)
	rootCmd.AddCommand(goalCmd)
}

var (
	goalYear         int
	goalGCI          float64
	goalVolume       float64
	goalTransactions int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage annual performance goals",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <user>",
	Short: "Set the annual goal for a year",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalSet,
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	goal := domain.AnnualGoal{
		UserID:            args[0],
		Year:              goalYear,
		GCITarget:         goalGCI,
		VolumeTarget:      goalVolume,
		TransactionTarget: goalTransactions,
	}
	saved, err := d.Service.SetAnnualGoal(goal, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Printf("Goal set for %d: $%.0f GCI, $%.0f volume, %d transactions.\n",
		saved.Year, saved.GCITarget, saved.VolumeTarget, saved.TransactionTarget)
	fmt.Printf("Monthly pace: $%.0f GCI, $%.0f volume, %.1f transactions.\n",
		saved.MonthlyGCITarget(), saved.MonthlyVolumeTarget(), saved.MonthlyTransactionTarget())
	return nil
}

var goalShowCmd = &cobra.Command{
	Use:   "show <user>",
	Short: "Show goal progress for a year",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalShow,
}

func runGoalShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	sum, err := d.Service.GoalSummary(args[0], goalYear)
	if err != nil {
		return err
	}

	fmt.Printf("%d campaign — %s\n\n", sum.Goal.Year, sum.Banner)
	fmt.Printf("GCI           $%.0f of $%.0f (%.0f%%)\n",
		sum.Progress.CurrentGCI, sum.Goal.GCITarget, sum.GCIPct)
	fmt.Printf("Volume        $%.0f of $%.0f (%.0f%%)\n",
		sum.Progress.CurrentVolume, sum.Goal.VolumeTarget, sum.VolumePct)
	fmt.Printf("Transactions  %d of %d (%.0f%%)\n",
		sum.Progress.CurrentTransactions, sum.Goal.TransactionTarget, sum.TransactionPct)
	fmt.Printf("Overall       %.0f%%\n", sum.OverallPct)
	return nil
}
