package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
	paymentsdto "sabalabor/internal/modules/payments/dto"
)

func newPaymentsCmd(opts *rootOptions) *cobra.Command {
	payments := &cobra.Command{Use: "payments", Short: "Pay for jobs and review transactions"}

	var jobID int64
	var amount float64
	create := &cobra.Command{
		Use:   "create --job-id <id> --amount <n>",
		Short: "Start a payment for a job you posted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.PaymentsCLI.Create(ctx, jobID, amount)
				if err != nil {
					return err
				}
				printPayment(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
	create.Flags().Int64Var(&jobID, "job-id", 0, "job to pay for")
	create.Flags().Float64Var(&amount, "amount", 0, "amount to pay")

	confirm := &cobra.Command{
		Use:   "confirm <id>",
		Short: "Confirm a pending payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.PaymentsCLI.Confirm(ctx, args[0])
				if err != nil {
					return err
				}
				printPayment(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"transactions"},
		Short:   "List payments you made or received",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.PaymentsCLI.Transactions(ctx)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no transactions")
					return nil
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%.2f %s\t%s\n", p.ID, p.JobID, p.Status, p.Amount, p.Currency, formatTime(p.CreatedAt))
				}
				return nil
			})
		},
	}

	payments.AddCommand(create, confirm, list)
	return payments
}

func printPayment(w io.Writer, p paymentsdto.PaymentOutput) {
	_, _ = fmt.Fprintf(w, "id: %s\njob: %d\npayer: %d\npayee: %d\namount: %.2f %s\nstatus: %s\nreference: %s\n",
		p.ID, p.JobID, p.PayerID, p.PayeeID, p.Amount, p.Currency, p.Status, p.Reference)
}
