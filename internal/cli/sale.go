package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bunkeboy/landlord/internal/daemon"
)

func init() {
	saleCmd.Flags().Float64Var(&salePrice, "price", 0, "Sale price")
	saleCmd.Flags().Float64Var(&saleCommission, "commission", 0, "Commission earned")
	_ = saleCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(saleCmd)
}

var (
	salePrice      float64
	saleCommission float64
)

var saleCmd = &cobra.Command{
	Use:   "sale <user>",
	Short: "Record a closed transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runSale,
}

func runSale(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Service.RecordSale(args[0], salePrice, saleCommission, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Printf("Kingdom acquired! %d properties sold, $%d lifetime volume.\n",
		result.PropertiesSold, result.SalesVolume)
	for _, a := range result.Unlocked {
		fmt.Printf("Badge earned: %s\n", a.Type)
	}
	if result.GoalPct != nil {
		fmt.Printf("Annual campaign at %.0f%%.\n", *result.GoalPct)
	}
	return nil
}
