package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"stride/internal/auth"
	"stride/internal/config"
	"stride/internal/store"
	"stride/internal/strava"
	"stride/internal/tool"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Strava reports and training analysis",
	Long: `stride talks to the Strava API to report on your activities, compare
recent running sessions and recommend training. It also serves the same
toolset to AI assistants over the Model Context Protocol (stride serve).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		// Logs go to stderr; stdout stays clean for reports and the
		// stdio transport.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// app bundles the wired-up dependencies every command needs.
type app struct {
	cfg    *config.Config
	store  *store.Store
	client *strava.Client
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// setup loads configuration, opens the local store and builds an
// authenticated API client. Tokens refresh through the store so the next
// invocation picks up where this one left off.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st, err := store.Open()
	if err != nil {
		return nil, err
	}

	onRefresh := func(token *oauth2.Token) error {
		err := st.UpdateTokens(token.AccessToken, token.RefreshToken, token.Expiry)
		if errors.Is(err, store.ErrNoAuth) {
			return st.SaveAuth(&store.Auth{
				AccessToken:  token.AccessToken,
				RefreshToken: token.RefreshToken,
				ExpiresAt:    token.Expiry,
			})
		}
		return err
	}
	creds := auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
	}

	var provider *auth.Provider
	saved, err := st.GetAuth()
	switch {
	case errors.Is(err, store.ErrNoAuth):
		provider, err = auth.NewProviderFromRefreshToken(creds, cfg.Strava.RefreshToken, onRefresh)
	case err == nil:
		provider, err = auth.NewProvider(creds, &oauth2.Token{
			AccessToken:  saved.AccessToken,
			RefreshToken: saved.RefreshToken,
			Expiry:       saved.ExpiresAt,
		}, onRefresh)
	}
	if err != nil {
		st.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		store:  st,
		client: strava.NewClient(provider),
	}, nil
}

// toolServer builds the MCP tool server over the app's dependencies.
func (a *app) toolServer() *tool.Server {
	return tool.New(a.client, tool.Options{
		MapsAPIKey: a.cfg.Maps.APIKey,
		MapSize:    a.cfg.Maps.Size,
		Cache:      a.store,
		Logger:     slog.Default(),
	})
}
