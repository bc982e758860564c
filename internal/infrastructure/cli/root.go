package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/wiz/internal/app"
	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Progress overrides the process spinner; tests pass a no-op.
	Progress ports.Progress
}

// runner builds the container on first use so `help` works without a config.
type runner struct {
	opts      Options
	verbose   bool
	container *app.Container
}

func (r *runner) load(ctx context.Context) (*app.Container, error) {
	if r.container != nil {
		return r.container, nil
	}
	newProgress := func(settings domain.ProgressSettings) ports.Progress {
		if r.opts.Progress != nil {
			return r.opts.Progress
		}
		return ProcessSpinner(settings)
	}
	c, err := app.BuildContainer(ctx, r.opts.Verbose || r.verbose, newProgress)
	if err != nil {
		return nil, err
	}
	r.container = c
	return c, nil
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	r := &runner{opts: opts}
	cmdCmd := newCmdCommand(r)

	root := &cobra.Command{
		Use:   "wiz [text]",
		Short: "wiz - ask a language model for shell commands and proofreading",
		Long: `wiz hands requests to the llm CLI and interprets what comes back.

  wiz <text>            same as wiz cmd <text>
  wiz cmd <text>        suggest one shell command
  wiz cmd list [n]      show the last n command requests
  wiz spell <file>      check a file for typos and grammar issues
  wiz (cmd|spell) status  show log database status
  wiz doctor            check the llm tool and log stores`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, r, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.container != nil {
				_ = r.container.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)
	// Everything after the first word belongs to the prompt, dashes included.
	root.Flags().SetInterspersed(false)
	root.PersistentFlags().BoolVar(&r.verbose, "verbose", false, "Enable debug logging on stderr")

	root.AddCommand(cmdCmd)
	root.AddCommand(newSpellCommand(r))
	root.AddCommand(newDoctorCommand(r))
	return root
}

func newCmdCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmd <text>",
		Short: "Suggest a single shell command for a request",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, r, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.AddCommand(newListCommand(r), newStatusCommand(r, domain.FreeformCommand))
	return cmd
}

func newSpellCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spell <file>",
		Short: "Check a file for typos and grammar issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.load(cmd.Context())
			if err != nil {
				return err
			}
			res, err := c.SpellService.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			NewRenderer(cmd.OutOrStdout()).Spell(res)
			return nil
		},
	}
	cmd.AddCommand(newStatusCommand(r, domain.SpellCheck))
	return cmd
}
