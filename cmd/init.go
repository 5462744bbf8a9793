package cmd

import (
	"github.com/spf13/cobra"

	"github.com/odanilov/adminctl/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init --base-url {url}",
	Short: "Create or update the configuration file",
	Long: `Records the admin API base URL in the configuration file,
creating the file when it does not exist yet.`,
	Args: cobra.NoArgs,
	// The configuration file may not exist yet, so the usual
	// load-and-validate step is skipped for this command.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		baseURL, _ := cmd.Flags().GetString("base-url")

		app.ExecuteInitCommand(cmd.Context(), configFilenameFromFlag, baseURL)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(initCmd)
}
