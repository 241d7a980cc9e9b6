package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, app.ErrNotLoggedIn) {
			fmt.Fprintln(os.Stderr, "roster: not logged in; run `roster login` first")
			return 2
		}
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse a remote user directory in the terminal",
		Long: `roster fetches a user directory once, then lets you search it by
first or last name, page through the results and open a detail card.

Run without arguments to start the interactive browser. A session must be
started with "roster login" first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/roster/config.toml)")
	root.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/roster/prefs.toml)")
	root.Flags().StringVar(&opts.Endpoint, "endpoint", "", "users endpoint URL (overrides config and ROSTER_ENDPOINT)")
	root.Flags().IntVar(&opts.PageSize, "page-size", 0, "cards per page (overrides config and ROSTER_PAGE_SIZE)")
	root.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(&opts),
		newLogoutCmd(&opts),
		newLogsCmd(&opts),
	)
	return root
}

func newLoginCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Start a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Login(opts.PrefsPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in. Run `roster` to browse the directory.")
			return nil
		},
	}
}

func newLogoutCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logout(opts.PrefsPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var (
		lines int
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the roster log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.TailLogs(*opts, lines)
			if err != nil {
				return err
			}
			palette := logtail.DefaultPalette()
			if plain {
				palette = logtail.Palette{}
			}
			out := cmd.OutOrStdout()
			for _, line := range logtail.FormatLines(entries, palette) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}
