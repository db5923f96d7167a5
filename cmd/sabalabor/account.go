package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
	accountdto "sabalabor/internal/modules/account/dto"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "View or edit your profile"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.AccountCLI.GetProfile(ctx)
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), p)
				return nil
			})
		},
	})

	var name, phone, location, bio string
	var skills []string
	var available bool
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := accountdto.UpdateProfileInput{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				input.Name = &name
			}
			if flags.Changed("phone") {
				input.Phone = &phone
			}
			if flags.Changed("location") {
				input.Location = &location
			}
			if flags.Changed("bio") {
				input.Bio = &bio
			}
			if flags.Changed("skills") {
				input.Skills = skills
			}
			if flags.Changed("available") {
				input.Available = &available
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.AccountCLI.UpdateProfile(ctx, input)
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
	update.Flags().StringVar(&name, "name", "", "full name")
	update.Flags().StringVar(&phone, "phone", "", "phone")
	update.Flags().StringVar(&location, "location", "", "location")
	update.Flags().StringVar(&bio, "bio", "", "short bio")
	update.Flags().StringSliceVar(&skills, "skills", nil, "skills")
	update.Flags().BoolVar(&available, "available", false, "accepting work (workers)")

	profile.AddCommand(update)
	return profile
}

func newWorkersCmd(opts *rootOptions) *cobra.Command {
	workers := &cobra.Command{Use: "workers", Short: "Find workers"}

	var skill, location string
	var availableOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.AccountCLI.ListWorkers(ctx, skill, location, availableOnly)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workers")
					return nil
				}
				for _, w := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.1f\t%s\n", w.ID, w.Name, w.Location, w.Rating, strings.Join(w.Skills, ","))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&skill, "skill", "", "required skill")
	list.Flags().StringVar(&location, "location", "", "location")
	list.Flags().BoolVar(&availableOnly, "available", false, "only workers accepting jobs")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a worker profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				w, err := app.AccountCLI.GetWorker(ctx, id)
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), w)
				return nil
			})
		},
	}

	workers.AddCommand(list, show)
	return workers
}

func printProfile(w io.Writer, p accountdto.ProfileOutput) {
	_, _ = fmt.Fprintf(w, "id: %d\nname: %s\nemail: %s\nphone: %s\ntype: %s\nlocation: %s\nskills: %s\navailable: %t\nrating: %.1f\n",
		p.ID, p.Name, p.Email, p.Phone, p.UserType, p.Location, strings.Join(p.Skills, ", "), p.Available, p.Rating)
	if p.Bio != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", p.Bio)
	}
}
