package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/daemon"
)

func init() {
	activityCmd.Flags().StringVar(&activityDate, "date", "", "Activity date (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(regenCmd)
}

var activityDate string

var activityCmd = &cobra.Command{
	Use:   "activity <user>",
	Short: "Record a day of activity and collect the streak bonus",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	day := time.Now().UTC()
	if activityDate != "" {
		day, err = time.Parse("2006-01-02", activityDate)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}

	result, err := d.Service.RecordDailyActivity(args[0], day)
	if err != nil {
		return err
	}

	switch {
	case result.StreakContinued:
		fmt.Printf("Streak extended to %d days: +%d gold, +%d XP.\n",
			result.StreakDays, result.BonusGold, result.BonusXP)
	case result.StreakBroken:
		fmt.Println("The streak was broken. A new campaign begins today.")
	default:
		fmt.Printf("Day already counted. Streak stands at %d days.\n", result.StreakDays)
	}
	for _, a := range result.Unlocked {
		fmt.Printf("Badge earned: %s\n", a.Type)
	}
	return nil
}

var regenCmd = &cobra.Command{
	Use:   "regen <user>",
	Short: "Check shield and heart regeneration",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegen,
}

func runRegen(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Service.CheckRegeneration(args[0], time.Now().UTC())
	if err != nil {
		return err
	}

	if result.ShieldsRegenerated > 0 {
		fmt.Printf("A shield was restored (%d total).\n", result.ShieldCount)
	}
	if result.HeartsRegenerated > 0 {
		fmt.Printf("A heart was restored (%d total).\n", result.HeartCount)
	}
	if result.ShieldsRegenerated == 0 && result.HeartsRegenerated == 0 {
		fmt.Printf("Shields: %d, Hearts: %d. Nothing due yet.\n", result.ShieldCount, result.HeartCount)
	}
	if result.NextShieldAt != nil {
		fmt.Printf("Next shield at %s.\n", result.NextShieldAt.Local().Format("15:04"))
	}
	if result.NextHeartAt != nil {
		fmt.Printf("Next heart at %s.\n", result.NextHeartAt.Local().Format("15:04"))
	}
	return nil
}
