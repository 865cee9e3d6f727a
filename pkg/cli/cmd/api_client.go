package cmd

import (
	"github.com/spf13/viper"

	"github.com/kiket/kiket/pkg/api/client"
	"github.com/kiket/kiket/pkg/log"
)

// buildClientOptions builds ClientOptions using the current context from
// viper and an optional server override.
func buildClientOptions(serverOverride string) *client.ClientOptions {
	opts := client.DefaultClientOptions()
	// Server precedence: explicit override > configured server > default
	if serverOverride != "" {
		opts.BaseURL = serverOverride
	} else if s := viper.GetString("server"); s != "" {
		opts.BaseURL = s
	}
	// Token from config/env
	if t := viper.GetString("token"); t != "" {
		opts.Token = t
	} else if t, ok := getEnv("KIKET_TOKEN"); ok {
		opts.Token = t
	}
	if verbose {
		logger := log.NewLogger()
		logger.SetLevel(log.DebugLevel)
		opts.Logger = logger.WithField("component", "api-client")
	}
	return opts
}

// newAPIClient creates a client using buildClientOptions with optional
// server and token overrides.
func newAPIClient(serverOverride, tokenOverride string) (*client.Client, error) {
	opts := buildClientOptions(serverOverride)
	if tokenOverride != "" {
		opts.Token = tokenOverride
	}
	return client.NewClient(opts)
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	if token == "" {
		return "(none)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
