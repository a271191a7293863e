package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rentwatch",
		Short:        "Overdue payment and lease expiration notifications for rental owners",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		runChecksCmd(),
		serveCmd(),
		migrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
