package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rent_notification_engine/internal/app"
	"rent_notification_engine/internal/infra/logger"
)

func runChecksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-checks",
		Short: "Run the overdue payment and lease expiration checks once",
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if quiet {
				logger.Quiet()
			}

			ctx := context.Background()
			d, err := build(ctx, cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			res, err := d.job.Run(ctx, app.TriggerCLI)
			if errors.Is(err, app.ErrRunSkipped) {
				if !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "Skipped: another check run is in progress.")
				}
				return nil
			}
			if err != nil {
				return err
			}

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d overdue payment notification(s).\n", res.OverduePayments)
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d lease expiration notification(s).\n", res.LeaseExpirations)
			}
			return nil
		},
	}

	cmd.Flags().Bool("quiet", false, "Only print warnings and errors")

	return cmd
}
