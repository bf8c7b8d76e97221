package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/daemon"
	"github.com/bunkeboy/landlord/internal/domain"
)

func init() {
	startCmd.Flags().StringVar(&startType, "type", "", "Activity type (listing, showing, offer, closing, prospecting, training, marketing)")
	startCmd.Flags().StringVar(&startTitle, "title", "", "Quest title")
	startCmd.Flags().BoolVar(&startSpecial, "special", false, "Special quest (doubles the reward)")
	_ = startCmd.MarkFlagRequired("type")
	completeCmd.Flags().StringVar(&completeID, "id", "", "Quest id from 'landlord start' (optional)")
	completeCmd.Flags().StringVar(&completeType, "type", "", "Activity type (listing, showing, offer, closing, prospecting, training, marketing)")
	completeCmd.Flags().StringVar(&completeTitle, "title", "", "Quest title")
	completeCmd.Flags().BoolVar(&completeSpecial, "special", false, "Special quest (doubles the reward)")
	_ = completeCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(questsCmd)
}

var (
	startType    string
	startTitle   string
	startSpecial bool

	completeID      string
	completeType    string
	completeTitle   string
	completeSpecial bool
)

var startCmd = &cobra.Command{
	Use:   "start <user>",
	Short: "Begin a quest without completing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now().UTC()
	activity := domain.ActivityType(startType)
	title := startTitle
	if title == "" {
		if info, ok := activity.Info(); ok {
			title = info.MedievalName
		}
	}

	started, err := d.Service.StartQuest(args[0], domain.Quest{
		Title:          title,
		Type:           activity,
		Status:         domain.QuestNotStarted,
		Date:           now,
		IsSpecialQuest: startSpecial,
	}, now)
	if err != nil {
		return err
	}

	fmt.Printf("Quest begun: %s\n", started.Title)
	fmt.Printf("Finish it with 'landlord complete %s --type %s --id %s'.\n",
		args[0], startType, started.ID)
	return nil
}

var completeCmd = &cobra.Command{
	Use:   "complete <user>",
	Short: "Complete a quest and collect the reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now().UTC()
	activity := domain.ActivityType(completeType)
	title := completeTitle
	if title == "" {
		if info, ok := activity.Info(); ok {
			title = info.MedievalName
		}
	}

	// Without --id the service assigns a fresh quest id.
	quest := domain.Quest{
		ID:             completeID,
		Title:          title,
		Type:           activity,
		Status:         domain.QuestNotStarted,
		Date:           now,
		IsSpecialQuest: completeSpecial,
	}

	result, err := d.Service.CompleteQuest(args[0], quest, now)
	if err != nil {
		return err
	}

	fmt.Printf("Quest complete: %s\n", result.Quest.Title)
	fmt.Printf("  +%d gold, +%d XP\n", result.Reward.Gold, result.Reward.XP)
	if result.LeveledUp {
		fmt.Printf("  Level up! Now level %d.\n", result.NewLevel)
	}
	if result.RankedUp {
		fmt.Printf("  Promoted to %s!\n", result.NewRank)
	}
	for _, a := range result.Unlocked {
		fmt.Printf("  Badge earned: %s\n", a.Type)
	}
	if result.BadgeGold > 0 {
		fmt.Printf("  +%d gold from badges\n", result.BadgeGold)
	}
	fmt.Printf("Treasury: %d gold. %s\n", result.NewGold, result.NewTitle)
	return nil
}

var questsCmd = &cobra.Command{
	Use:   "quests <user>",
	Short: "List today's quests",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuests,
}

func runQuests(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	quests, err := d.Service.Quests(args[0], time.Now().UTC())
	if err != nil {
		return err
	}
	if len(quests) == 0 {
		fmt.Println("No quests today. Run 'landlord complete' to log one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tTYPE\tSTATUS\tSPECIAL")
	for _, q := range quests {
		special := ""
		if q.IsSpecialQuest {
			special = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", q.Title, q.Type, q.Status.Label(), special)
	}
	return w.Flush()
}
