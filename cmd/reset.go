package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var resetUsersCmdFlags struct {
	Yes bool
}

var resetUsersCmd = &cobra.Command{
	Use:   "reset-users",
	Short: "Delete all registered users",
	Long:  `This command deletes every user from the credential store. The operation is irreversible.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !resetUsersCmdFlags.Yes {
			fmt.Print("This deletes ALL users. Type 'yes' to continue: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			if strings.TrimSpace(line) != "yes" {
				log.Info("reset aborted")
				return nil
			}
		}

		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.ResetUsers(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset users: %w", err)
		}
		log.Info("all users deleted")
		return nil
	},
}

func init() {
	resetUsersCmd.Flags().BoolVarP(&resetUsersCmdFlags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(resetUsersCmd)
}
