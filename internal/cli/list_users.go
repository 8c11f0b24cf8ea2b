package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tripvault/internal/server/users"
)

var listUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := dir.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("no accounts")
			return nil
		}

		for _, u := range records {
			if u.Role == users.RoleAdmin {
				color.Yellow("%s\t%s\t%s", u.Username, u.Email, u.Role)
			} else {
				fmt.Printf("%s\t%s\t%s\n", u.Username, u.Email, u.Role)
			}
		}
		return nil
	},
}
