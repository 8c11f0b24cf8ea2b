// Package cli implements the tripvault administration tool. Its commands
// talk to the configured storage backend directly, bypassing the HTTP
// surface; the role-change restriction of the public API does not apply
// here.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripvault/internal/buildinfo"
	"tripvault/internal/logging"
	"tripvault/internal/server"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/config"
	"tripvault/internal/server/store"
	"tripvault/internal/server/users"
)

var (
	cfg          *config.Config
	dir          *users.Directory
	tokens       *auth.TokenService
	closeStorage func()
)

var rootCmd = &cobra.Command{
	Use:   "tripvault-admin",
	Short: "TripVault administration tool",
	Long: `Administration commands for a TripVault deployment: bootstrap the
first admin account, mint bearer tokens, inspect the user directory.

Storage is resolved from the same configuration the server uses (flags,
JSON overlay, environment).`,
	Version:           buildinfo.Version,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if closeStorage != nil {
			closeStorage()
		}
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.LoadConfig()
	log := logging.NewDefault("error")

	backend, closer, err := server.NewBackend(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	if closer != nil {
		closeStorage = func() { _ = closer.Close() }
	}

	dir = users.NewDirectory(store.NewCollection[users.User](backend, "users"), true, log)
	tokens = auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	return nil
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(issueTokenCmd)
	rootCmd.AddCommand(listUsersCmd)
}
