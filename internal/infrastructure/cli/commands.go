package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/wiz/internal/domain"
)

func runCommand(cmd *cobra.Command, r *runner, args []string) error {
	if len(args) == 0 {
		return domain.ErrEmptyPrompt
	}
	c, err := r.load(cmd.Context())
	if err != nil {
		return err
	}
	suggestion, err := c.CommandService.Run(cmd.Context(), args)
	if err != nil {
		return err
	}
	NewRenderer(cmd.OutOrStdout()).Command(suggestion)
	return nil
}

func newListCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list [number]",
		Short: "List the most recent command requests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.load(cmd.Context())
			if err != nil {
				return err
			}
			records, err := c.LogsService.History(cmd.Context(), domain.FreeformCommand, parseLimit(args))
			if err != nil {
				return err
			}
			NewRenderer(cmd.OutOrStdout()).History(records)
			return nil
		},
	}
}

func newStatusCommand(r *runner, kind domain.TaskKind) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of the " + kind.String() + " log database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.load(cmd.Context())
			if err != nil {
				return err
			}
			status, err := c.LogsService.Status(cmd.Context(), kind)
			if err != nil {
				return err
			}
			NewRenderer(cmd.OutOrStdout()).Status(status)
			return nil
		},
	}
}

// parseLimit reads the optional count; anything unparsable means "default".
func parseLimit(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func newDoctorCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.load(cmd.Context())
			if err != nil {
				return err
			}
			report, err := c.DoctorService.Run(cmd.Context())

			// Display report even if there were errors
			NewRenderer(cmd.OutOrStdout()).Doctor(report)

			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}
