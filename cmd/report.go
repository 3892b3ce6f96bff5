package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lromero/almacen/session"
)

var reportCmdFlags struct {
	Threshold int
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a low-stock report",
	Long:  `Lists products whose quantity is at or below the given threshold, ordered by quantity ascending.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		products, err := session.New(st).LowStockReport(cmd.Context(), reportCmdFlags.Threshold)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		if len(products) == 0 {
			fmt.Printf("No products with quantity <= %d\n", reportCmdFlags.Threshold)
			return nil
		}

		fmt.Printf("Products with quantity <= %d:\n", reportCmdFlags.Threshold)
		for _, p := range products {
			fmt.Printf("  ID: %d, Name: %s, Quantity: %d, Price: %.2f, Category: %s\n",
				p.ID, p.Name, p.Quantity, p.Price, p.Category)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVarP(&reportCmdFlags.Threshold, "threshold", "t", 5, "Report products with quantity at or below this value")

	rootCmd.AddCommand(reportCmd)
}
