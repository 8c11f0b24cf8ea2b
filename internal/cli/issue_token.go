package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var issueTokenEmail string

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Mint a bearer token for an existing account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if issueTokenEmail == "" {
			return fmt.Errorf("--email is required")
		}

		if _, err := dir.FindByEmail(cmd.Context(), issueTokenEmail); err != nil {
			return err
		}

		token, err := tokens.Issue(issueTokenEmail)
		if err != nil {
			return err
		}

		color.Green("Token for %s (valid %s):", issueTokenEmail, cfg.TokenValidityDuration)
		fmt.Println(token)
		return nil
	},
}

func init() {
	issueTokenCmd.Flags().StringVar(&issueTokenEmail, "email", "", "account email")
}
