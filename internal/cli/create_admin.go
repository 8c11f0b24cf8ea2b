package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tripvault/internal/server/users"
)

var (
	createAdminUsername string
	createAdminEmail    string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an account with the admin role",
	Long: `Registers a new account and promotes it to admin. The password is
prompted for without echo.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if createAdminUsername == "" || createAdminEmail == "" {
			return fmt.Errorf("--username and --email are required")
		}

		password, err := promptPassword()
		if err != nil {
			return err
		}

		if _, err := dir.Register(cmd.Context(), createAdminUsername, createAdminEmail, password); err != nil {
			return err
		}

		role := users.RoleAdmin
		if _, err := dir.UpdateProfile(cmd.Context(), createAdminEmail, createAdminEmail, users.ProfilePatch{Role: &role}); err != nil {
			return err
		}

		color.Green("Admin account %s created", createAdminEmail)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&createAdminUsername, "username", "", "username for the new account")
	createAdminCmd.Flags().StringVar(&createAdminEmail, "email", "", "email for the new account")
}
