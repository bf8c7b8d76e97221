package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/app/progression"
	"github.com/bunkeboy/landlord/internal/daemon"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsCatalog, "catalog", false, "Show the full badge catalog instead of earned badges")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCatalog bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements <user>",
	Short: "List earned badges, or the full catalog with --catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	if achievementsCatalog {
		return printCatalog()
	}
	if len(args) != 1 {
		return fmt.Errorf("a user is required unless --catalog is set")
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	achievements, err := d.Service.Achievements(args[0])
	if err != nil {
		return err
	}
	if len(achievements) == 0 {
		fmt.Println("No badges yet. Complete quests to earn your first.")
		return nil
	}

	catalog := d.Service.Catalog()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tRARITY\tEARNED\tNEW")
	for _, a := range achievements {
		name, rarity := a.Type, ""
		if rule, ok := progression.RuleByID(catalog, a.Type); ok {
			name = rule.Badge.Name
			rarity = string(rule.Badge.Rarity)
		}
		isNew := ""
		if a.IsNew {
			isNew = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, rarity, a.EarnedDate.Format("2006-01-02"), isNew)
	}
	return w.Flush()
}

func printCatalog() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBADGE\tCATEGORY\tRARITY\tGOLD")
	for _, rule := range progression.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			rule.ID, rule.Badge.Name, rule.Category.DisplayName(),
			rule.Badge.Rarity, rule.Badge.GoldReward)
	}
	return w.Flush()
}
