package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered usernames",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		users, err := st.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users registered")
			return nil
		}
		for _, u := range users {
			fmt.Println(u.Username)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
