package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
)

func newNotificationsCmd(opts *rootOptions) *cobra.Command {
	notes := &cobra.Command{Use: "notifications", Short: "Read your notifications"}

	notes.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NotificationsCLI.List(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%d unread\n", out.Unread)
				for _, n := range out.Items {
					mark := " "
					if !n.Read {
						mark = "*"
					}
					_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s: %s\n", mark, n.ID, formatTime(n.CreatedAt), n.Title, n.Message)
				}
				return nil
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				return app.NotificationsCLI.MarkRead(ctx, args[0])
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				return app.NotificationsCLI.Delete(ctx, args[0])
			})
		},
	})
	return notes
}
