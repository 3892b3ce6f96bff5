package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lromero/almacen/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo data for a fresh database",
	Long:  `Creates the demo user (user_test/user123) if it does not exist and a handful of demo products if the inventory is empty.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		ctx := cmd.Context()

		if _, err := st.Authenticate(ctx, "user_test", "user123"); errors.Is(err, store.ErrNotFound) {
			if err := st.AddUser(ctx, "user_test", "user123"); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("failed to seed demo user: %w", err)
			}
			log.Info("demo user created", "username", "user_test")
		} else if err != nil {
			return fmt.Errorf("failed to check demo user: %w", err)
		}

		products, err := st.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		if len(products) > 0 {
			log.Info("inventory not empty, skipping demo products", "count", len(products))
			return nil
		}

		demo := []store.Product{
			{Name: "Manzana", Description: "Manzanas rojas frescas", Quantity: 100, Price: 2.50, Category: "Fruta"},
			{Name: "Leche Entera", Description: "Leche de vaca, 1 litro", Quantity: 50, Price: 1.80, Category: "Lácteo"},
			{Name: "Pan Integral", Description: "Pan de molde integral 500g", Quantity: 20, Price: 3.20, Category: "Panaderia"},
		}
		for _, p := range demo {
			id, err := st.AddProduct(ctx, p)
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
			}
			log.Info("demo product created", "id", id, "name", p.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
