package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/daemon"
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <user>",
	Short: "Create a fresh progression profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	p, err := d.Service.CreateUser(args[0], time.Now().UTC())
	if err != nil {
		return err
	}
	fmt.Printf("Welcome to the realm, %s! Shields: %d, Hearts: %d.\n",
		p.UserID, p.ShieldCount, p.HeartCount)
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status <user>",
	Short: "Show a user's progression: gold, level, rank, streak",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	sum, err := d.Service.Summary(args[0], time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n\n", sum.UserID, sum.Title)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Gold\t%d\n", sum.GoldBalance)
	fmt.Fprintf(w, "Level\t%d (%.0f%% to next)\n", sum.Level, sum.LevelProgressPct)
	fmt.Fprintf(w, "XP\t%d\n", sum.ExperiencePoints)
	if sum.NextRank != "" {
		fmt.Fprintf(w, "Rank\t%s (%d XP to %s)\n", sum.Rank, sum.XPToNextRank, sum.NextRank)
	} else {
		fmt.Fprintf(w, "Rank\t%s\n", sum.Rank)
	}
	fmt.Fprintf(w, "Streak\t%d days — %s\n", sum.StreakDays, sum.StreakBanner)
	fmt.Fprintf(w, "Shields\t%d\n", sum.ShieldCount)
	fmt.Fprintf(w, "Hearts\t%d\n", sum.HeartCount)
	fmt.Fprintf(w, "Quests\t%d completed\n", sum.Counters.QuestsCompleted)
	fmt.Fprintf(w, "Badges\t%d earned", sum.AchievementCount)
	if sum.NewAchievements > 0 {
		fmt.Fprintf(w, " (%d new)", sum.NewAchievements)
	}
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return err
	}

	if sum.NextShieldAt != nil {
		fmt.Printf("\nNext shield at %s\n", sum.NextShieldAt.Local().Format("15:04"))
	}
	if sum.NextHeartAt != nil {
		fmt.Printf("Next heart at %s\n", sum.NextHeartAt.Local().Format("15:04"))
	}
	return nil
}
