package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiket/kiket/pkg/cli/format"
	"github.com/kiket/kiket/pkg/validate"
)

var doctorCheckAPI bool

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor [project directory]",
	Short: "Diagnose an extension project and the local environment",
	Long: `Doctor runs the manifest validation engine and a set of
environment checks (CLI configuration, API credentials, optional API
reachability), rendered as a check-by-check report.

Examples:
  kiket doctor
  kiket doctor --check-api ./my-extension`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runDoctor(root)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorCheckAPI, "check-api", false, "Also check API reachability with the configured credentials")
}

func runDoctor(root string) error {
	failed := 0

	printCheck := func(ok bool, name, detail string) {
		if !ok {
			failed++
		}
		if detail != "" {
			fmt.Printf("%s %s: %s\n", format.StatusSymbol(ok), name, detail)
		} else {
			fmt.Printf("%s %s\n", format.StatusSymbol(ok), name)
		}
	}

	// Manifest checks via the validation engine.
	report, err := validate.RunDir(root)
	if err != nil {
		printCheck(false, "manifest", err.Error())
	} else {
		errors := len(report.Errors())
		warnings := len(report.Warnings())
		switch {
		case errors > 0:
			printCheck(false, "manifest", fmt.Sprintf("%d errors, %d warnings (run 'kiket lint' for details)", errors, warnings))
		case warnings > 0:
			printCheck(true, "manifest", fmt.Sprintf("valid with %d warnings", warnings))
		default:
			printCheck(true, "manifest", "valid")
		}
	}

	// Environment checks.
	if viper.ConfigFileUsed() != "" {
		printCheck(true, "config", viper.ConfigFileUsed())
	} else {
		printCheck(true, "config", "no config file (defaults in effect)")
	}

	token := viper.GetString("token")
	if token == "" {
		if envToken, ok := getEnv("KIKET_TOKEN"); ok {
			token = envToken
		}
	}
	printCheck(token != "", "credentials", "API token "+maskToken(token))

	if doctorCheckAPI {
		api, err := newAPIClient("", "")
		if err != nil {
			printCheck(false, "api", err.Error())
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := api.Ping(ctx); err != nil {
				printCheck(false, "api", err.Error())
			} else {
				printCheck(true, "api", "reachable")
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d %s failed", failed, plural(failed, "check", "checks"))
	}
	return nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
