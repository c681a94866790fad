package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"habits/internal/cli"
	"habits/internal/core"
)

// sessionOpener starts a session for one command invocation.
type sessionOpener func(ctx context.Context) (*cli.Session, error)

func rootCmd(open sessionOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "habits",
		Short:         "Track daily habits and streaks",
		Long:          "habits keeps a list of daily habits, their streaks and a per-day history in local storage.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		addCmd(open),
		listCmd(open),
		toggleCmd(open),
		deleteCmd(open),
		weekCmd(open),
		dayCmd(open),
	)

	return root
}

// withSession opens a session, runs fn and closes the session again.
func withSession(cmd *cobra.Command, open sessionOpener, fn func(s *cli.Session) error) error {
	s, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func addCmd(open sessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *cli.Session) error {
				h, err := s.Ledger.AddHabit(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q (id %d)\n", h.Name, h.ID)
				return nil
			})
		},
	}
}

func listCmd(open sessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "today"},
		Short:   "Show today's habits and progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *cli.Session) error {
				renderToday(cmd.OutOrStdout(), s.Ledger)
				return nil
			})
		},
	}
}

func toggleCmd(open sessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a habit as done today, or undo it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, open, func(s *cli.Session) error {
				h, err := s.Ledger.ToggleCompletion(cmd.Context(), id)
				if errors.Is(err, core.ErrHabitNotFound) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), habitLine(h, s.Ledger.Calendar()))
				return nil
			})
		},
	}
}

func deleteCmd(open sessionOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a habit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(cmd, "Are you sure you want to delete this habit?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return withSession(cmd, open, func(s *cli.Session) error {
				return s.Ledger.DeleteHabit(cmd.Context(), id)
			})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func weekCmd(open sessionOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the completion history of the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *cli.Session) error {
				days, _ := cmd.Flags().GetInt("days")
				if days <= 0 {
					days = s.Config.HistoryDays
				}
				renderWeek(cmd.OutOrStdout(), s.Ledger.Week(days))
				return nil
			})
		},
	}
	cmd.Flags().Int("days", 0, "number of days to show (0 = use HISTORY_DAYS)")
	return cmd
}

func dayCmd(open sessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show the habits recorded on a given day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(s *cli.Session) error {
				date, err := s.Ledger.Calendar().ParseDate(args[0])
				if err != nil {
					return err
				}
				renderDay(cmd.OutOrStdout(), date, s.Ledger.Detail(core.FormatDate(date)))
				return nil
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid habit id %q", s)
	}
	return id, nil
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
