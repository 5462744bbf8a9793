package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/odanilov/adminctl/internal/config"
	"github.com/odanilov/adminctl/internal/logger"
	"github.com/odanilov/adminctl/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "adminctl",
		Short: "Manage an admin panel session from the command line.",
		Long: `Adminctl signs in to an admin panel backend, keeps the bearer token
on disk between invocations and attaches it to every API request.

Sign in once with 'adminctl login'; afterwards 'status', 'profile' and
'token' operate on the stored session until it is signed out or the
backend rejects the token.`,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringP(
		"base-url",
		"u",
		"",
		"base URL of the admin API (overrides the configured value).")

	rootCmd.PersistentFlags().StringP(
		"state-path",
		"s",
		"",
		"path of the session state file (overrides the configured value).")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		baseURL, err := flags.GetString("base-url")
		if err != nil {
			return err
		}

		cfg.BaseURL = baseURL
	}

	if flag := flags.Lookup("state-path"); flag != nil && flag.Changed {
		statePath, err := flags.GetString("state-path")
		if err != nil {
			return err
		}

		cfg.StatePath = statePath
	}

	return nil
}
