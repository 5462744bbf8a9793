package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/odanilov/adminctl/internal/client/admin"
	"github.com/odanilov/adminctl/internal/config"
	"github.com/odanilov/adminctl/internal/logger"
	"github.com/odanilov/adminctl/internal/service/session"
	"github.com/odanilov/adminctl/internal/storage"
)

// buildSession wires the token store, the API client and the session
// service together. The caller must Close the returned service.
func buildSession(ctx context.Context, cfg *config.Config) *session.ServiceImpl {
	statePath := cfg.StatePath
	if statePath == "" {
		var err error

		statePath, err = storage.DefaultStatePath()
		if err != nil {
			logger.Fatalf(ctx, "Failed to resolve state file location: %v", err)
		}
	}

	store, err := storage.NewFileStore(statePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open state file: %v", err)
	}

	// The store doubles as the token provider, so every request reads
	// the freshest persisted token.
	client, err := admin.NewClient(cfg, store)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize admin API client: %v", err)
	}

	return session.NewService(client, store)
}

// ExecuteLoginCommand signs in with the given e-mail, prompting for it
// when absent and for the password always.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, email string) {
	var err error

	if email == "" {
		if email, err = promptEmail(os.Stdin); err != nil {
			logger.Fatalf(ctx, "%v", err)
		}
	}

	if email == "" {
		logger.Fatalf(ctx, "An email address is required to sign in.")
	}

	password, err := promptPassword()
	if err != nil {
		logger.Fatalf(ctx, "%v", err)
	}

	service := buildSession(ctx, cfg)
	defer service.Close()

	if err = service.SignIn(ctx, email, password); err != nil {
		logger.Fatalf(ctx, "Sign-in failed: %s", loginFailureMessage(err))
	}

	state := service.Snapshot()

	logger.Infof(ctx, "Signed in to %s.", cfg.BaseURL)
	printIdentity(ctx, state)
}

// ExecuteLogoutCommand signs out and clears the stored session.
func ExecuteLogoutCommand(ctx context.Context, cfg *config.Config) {
	service := buildSession(ctx, cfg)
	defer service.Close()

	if err := service.SignOut(ctx); err != nil {
		logger.Fatalf(ctx, "Sign-out failed: %v", err)
	}

	logger.Info(ctx, "Signed out.")
}

// ExecuteStatusCommand verifies the stored token against the backend
// and reports the session state.
func ExecuteStatusCommand(ctx context.Context, cfg *config.Config) {
	service := buildSession(ctx, cfg)
	defer service.Close()

	authenticated, err := service.CheckAuth(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to verify the session: %v", err)
	}

	if !authenticated {
		logger.Info(ctx, "Not authenticated. Run 'adminctl login' to sign in.")
		return
	}

	state := service.Snapshot()

	logger.Infof(ctx, "Authenticated against %s.", cfg.BaseURL)
	printIdentity(ctx, state)
}

// ExecuteProfileCommand prints the freshest profile available.
// A failed refresh falls back to the last known profile and is
// reported, not fatal.
func ExecuteProfileCommand(ctx context.Context, cfg *config.Config) {
	service := buildSession(ctx, cfg)
	defer service.Close()

	authenticated, err := service.CheckAuth(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to verify the session: %v", err)
	}

	if !authenticated {
		logger.Fatalf(ctx, "Not authenticated. Run 'adminctl login' to sign in.")
	}

	result := service.RefreshProfile(ctx)
	if result.Err != nil {
		logger.Warnf(ctx, "Failed to refresh the profile: %v", result.Err)
	}

	if result.Profile == nil {
		logger.Fatalf(ctx, "No profile is available.")
	}

	printProfile(ctx, result.Profile, result.Refreshed)
}

// ExecuteTokenCommand prints the stored bearer token to stdout, so it
// can be captured by scripts. Exits non-zero when no token is stored.
func ExecuteTokenCommand(ctx context.Context, cfg *config.Config) {
	service := buildSession(ctx, cfg)
	defer service.Close()

	token := service.Token()
	if token == "" {
		logger.Fatalf(ctx, "No token is stored. Run 'adminctl login' to sign in.")
	}

	fmt.Fprintln(os.Stdout, token)
}

// ExecuteInitCommand records the admin API base URL in the
// configuration file, creating it when absent.
func ExecuteInitCommand(ctx context.Context, configPath, baseURL string) {
	cfg := &config.Config{BaseURL: baseURL}
	if err := config.ValidateConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Invalid base URL: %v", err)
	}

	if configPath != "" {
		config.SetConfigFile(configPath)
	}

	if err := config.SaveBaseURL(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration updated, base URL set to %s.", cfg.BaseURL)
}

// loginFailureMessage picks the user-facing text for a failed sign-in.
func loginFailureMessage(err error) string {
	var classified *admin.Error
	if errors.As(err, &classified) {
		return classified.Message
	}

	return err.Error()
}

func printIdentity(ctx context.Context, state session.State) {
	if state.User != nil {
		logger.Infof(ctx, "User: %s <%s> (role: %s)",
			state.User.Name, state.User.Email, state.User.Role)
	}

	if state.Profile != nil && state.Profile.FullName != "" {
		logger.Infof(ctx, "Full name: %s", state.Profile.FullName)
	}
}

func printProfile(ctx context.Context, profile *admin.Profile, refreshed bool) {
	logger.Infof(ctx, "ID:        %d", profile.ID)
	logger.Infof(ctx, "Name:      %s", profile.Name)
	logger.Infof(ctx, "Email:     %s", profile.Email)
	logger.Infof(ctx, "Role:      %s", profile.Role)

	if profile.FullName != "" {
		logger.Infof(ctx, "Full name: %s", profile.FullName)
	}

	if !refreshed {
		logger.Warn(ctx, "Showing the last known profile, the backend could not be reached.")
	}
}
