package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
	sessiondto "sabalabor/internal/modules/session/dto"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login --email <email>",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = p
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Login(ctx, email, password)
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), "logged in", out.User)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (read from stdin when omitted)")
	return cmd
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	input := sessiondto.RegisterInput{}
	var confirm string
	cmd := &cobra.Command{
		Use:   "register --name <name> --email <email> --phone <phone>",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input.Password == "" {
				p, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				input.Password = p
			}
			if confirm == "" {
				confirm = input.Password
			}
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Register(ctx, input, confirm)
				if err != nil {
					return err
				}
				printUser(cmd.OutOrStdout(), "registered", out.User)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "full name")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (read from stdin when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&input.UserType, "type", "client", "account type: client|worker")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				app.SessionCLI.Logout(ctx, remote)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also end the session on the server")
	return cmd
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				current := app.SessionCLI.Current(ctx)
				if !current.Authenticated {
					_, _ = fmt.Fprintln(out, "not logged in")
					return nil
				}
				printUser(out, "session", current.User)
				if claims, err := app.SessionCLI.Claims(ctx); err == nil {
					_, _ = fmt.Fprintf(out, "token subject=%s issuer=%s issued=%s expires=%s\n",
						claims.Subject, claims.Issuer, formatTime(claims.IssuedAt), formatTime(claims.ExpiresAt))
				}
				if !verify {
					return nil
				}
				user, err := app.SessionCLI.Verify(ctx)
				if err != nil {
					if !app.SessionCLI.Current(ctx).Authenticated {
						_, _ = fmt.Fprintln(out, "server rejected the session; logged out")
					}
					return err
				}
				printUser(out, "verified", user)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "ask the server to confirm the token")
	return cmd
}

func printUser(w io.Writer, label string, u sessiondto.UserOutput) {
	_, _ = fmt.Fprintf(w, "%s: id=%d name=%q email=%s type=%s\n", label, u.ID, u.Name, u.Email, u.UserType)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
