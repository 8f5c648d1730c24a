package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "antdoclet",
		Short: "Generates HTML documentation for Ant tasks and types",
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newRecordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
