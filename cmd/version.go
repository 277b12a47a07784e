package cmd

import (
	"fmt"

	"github.com/redbadger/create-deployment/constants"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the create-deployment command",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("create-deployment version %s\n", constants.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
