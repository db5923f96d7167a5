package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
	jobsdto "sabalabor/internal/modules/jobs/dto"
	"sabalabor/internal/platform/form"
)

func newJobsCmd(opts *rootOptions) *cobra.Command {
	jobs := &cobra.Command{Use: "jobs", Short: "Browse and manage jobs"}

	jobs.AddCommand(&cobra.Command{
		Use:   "available",
		Short: "List jobs open for applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.JobsCLI.ListAvailable(ctx)
				if err != nil {
					return err
				}
				printJobs(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	var status, jobType, location string
	list := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.JobsCLI.List(ctx, status, jobType, location)
				if err != nil {
					return err
				}
				printJobs(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	list.Flags().StringVar(&status, "status", "", "available|assigned|in_progress|completed")
	list.Flags().StringVar(&jobType, "type", "", "job type")
	list.Flags().StringVar(&location, "location", "", "location")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show job details",
		Args:  cobra.ExactArgs(1),
		RunE: jobByID(opts, func(ctx context.Context, app *bootstrap.App, id int64) (jobsdto.JobOutput, error) {
			return app.JobsCLI.Get(ctx, id)
		}),
	}

	create := &cobra.Command{
		Use:   "create --title <t> --description <d> --type <type> --location <l> --budget <n> --hours <n>",
		Short: "Post a new job",
	}
	createValues := draftFlags(create)
	create.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
			job, err := app.JobsCLI.Create(ctx, createValues())
			if err != nil {
				return err
			}
			printJob(cmd.OutOrStdout(), job)
			return nil
		})
	}

	update := &cobra.Command{
		Use:   "update <id> --title <t> ...",
		Short: "Replace the editable fields of a job",
		Args:  cobra.ExactArgs(1),
	}
	updateValues := draftFlags(update)
	update.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
			job, err := app.JobsCLI.Update(ctx, id, updateValues())
			if err != nil {
				return err
			}
			printJob(cmd.OutOrStdout(), job)
			return nil
		})
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job you posted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.JobsCLI.Delete(ctx, id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted job %d\n", id)
				return nil
			})
		},
	}

	apply := &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply to a job as a worker",
		Args:  cobra.ExactArgs(1),
		RunE: jobByID(opts, func(ctx context.Context, app *bootstrap.App, id int64) (jobsdto.JobOutput, error) {
			return app.JobsCLI.Apply(ctx, id)
		}),
	}

	accept := &cobra.Command{
		Use:   "accept <id> <worker-id>",
		Short: "Hire an applicant for your job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			workerID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				job, err := app.JobsCLI.AcceptWorker(ctx, id, workerID)
				if err != nil {
					return err
				}
				printJob(cmd.OutOrStdout(), job)
				return nil
			})
		},
	}

	complete := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a job completed",
		Args:  cobra.ExactArgs(1),
		RunE: jobByID(opts, func(ctx context.Context, app *bootstrap.App, id int64) (jobsdto.JobOutput, error) {
			return app.JobsCLI.Complete(ctx, id)
		}),
	}

	jobs.AddCommand(list, show, create, update, remove, apply, accept, complete)
	return jobs
}

// draftFlags registers the job form fields on cmd and returns a reader for
// their raw values. Validation happens in the jobs handler.
func draftFlags(cmd *cobra.Command) func() form.Values {
	var title, description, jobType, location, budget, hours, scheduled string
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&description, "description", "", "job description")
	cmd.Flags().StringVar(&jobType, "type", "", "job type")
	cmd.Flags().StringVar(&location, "location", "", "job location")
	cmd.Flags().StringVar(&budget, "budget", "", "budget")
	cmd.Flags().StringVar(&hours, "hours", "", "estimated hours")
	cmd.Flags().StringVar(&scheduled, "date", "", "scheduled date (optional)")
	return func() form.Values {
		return form.Values{
			"title":           title,
			"description":     description,
			"job_type":        jobType,
			"location":        location,
			"budget":          budget,
			"estimated_hours": hours,
			"scheduled_date":  scheduled,
		}
	}
}

func jobByID(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App, id int64) (jobsdto.JobOutput, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
			job, err := fn(ctx, app, id)
			if err != nil {
				return err
			}
			printJob(cmd.OutOrStdout(), job)
			return nil
		})
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func printJobs(w io.Writer, jobs []jobsdto.JobOutput) {
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(w, "no jobs")
		return
	}
	for _, j := range jobs {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n", j.ID, j.Status, j.JobType, j.Location, j.Budget, j.Title)
	}
}

func printJob(w io.Writer, j jobsdto.JobOutput) {
	_, _ = fmt.Fprintf(w, "id: %d\ntitle: %s\nstatus: %s\ntype: %s\nlocation: %s\nbudget: %.2f\nhours: %.1f\nclient: %d\nworker: %d\napplicants: %v\n",
		j.ID, j.Title, j.Status, j.JobType, j.Location, j.Budget, j.EstimatedHours, j.ClientID, j.WorkerID, j.Applicants)
	if j.ScheduledDate != "" {
		_, _ = fmt.Fprintf(w, "date: %s\n", j.ScheduledDate)
	}
	if j.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", j.Description)
	}
}
