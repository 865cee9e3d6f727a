package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiket/kiket/pkg/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the kiket version information",
	Long:  `Display detailed version information about the kiket binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
