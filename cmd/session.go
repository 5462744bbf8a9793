package cmd

import (
	"github.com/spf13/cobra"

	"github.com/odanilov/adminctl/internal/app"
)

var (
	loginCmd = &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in and store the session token",
		Long: `Signs in to the admin panel backend and stores the bearer token on disk.

The email can be passed as an argument or entered interactively; the
password is always read from the terminal without echoing.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var email string
			if len(args) > 0 {
				email = args[0]
			}

			app.ExecuteLoginCommand(cmd.Context(), appConfig, email)
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored session",
		Long: `Invalidates the session on the server and clears the stored token.

The local session is cleared even when the server cannot be reached.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteLogoutCommand(cmd.Context(), appConfig)
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Check whether the stored session is still valid",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteStatusCommand(cmd.Context(), appConfig)
		},
	}

	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the signed-in user",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteProfileCommand(cmd.Context(), appConfig)
		},
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Print the stored bearer token",
		Long: `Prints the stored bearer token to stdout for use in scripts, e.g.:

curl -H "Authorization: Bearer $(adminctl token)" ...`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, statusCmd, profileCmd, tokenCmd)
}
