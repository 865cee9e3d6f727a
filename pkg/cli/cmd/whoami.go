package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWhoAmICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "whoami",
		Short:         "Show current identity and server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := viper.GetString("server")
			token := viper.GetString("token")

			api, err := newAPIClient("", "")
			if err != nil {
				// Fallback to local display only
				fmt.Printf("Server: %s\nToken: %s\n", server, maskToken(token))
				return nil
			}

			account, err := api.WhoAmI(context.Background())
			if err != nil {
				fmt.Printf("Server: %s\nToken: %s\n", server, maskToken(token))
				return nil
			}

			fmt.Printf("Server: %s\n", server)
			if account.Name != "" {
				fmt.Printf("Name: %s\n", account.Name)
			}
			if account.Email != "" {
				fmt.Printf("Email: %s\n", account.Email)
			}
			if account.Organization != "" {
				fmt.Printf("Organization: %s\n", account.Organization)
			}
			fmt.Printf("Token: %s\n", maskToken(token))
			return nil
		},
	}
	return cmd
}
