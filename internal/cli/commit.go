package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qit.dev/qit/internal/actions"
	"qit.dev/qit/internal/cli/helpers"
	qiterrors "qit.dev/qit/internal/errors"
	"qit.dev/qit/internal/message"
	"qit.dev/qit/internal/runtime"
	"qit.dev/qit/internal/tui"
	"qit.dev/qit/internal/utils"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		area        string
		noVerify    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "commit <type> <message>",
		Aliases: []string{"c"},
		Short:   "Stage all changes and commit them with a formatted message",
		Long: `Stage every change in the working tree and commit it with a message of the form

  <emoji> <type>(<area>): <message>

The area is optional. Pass - as the message to read it from standard input;
only the first non-blank line is used.
Set QIT_DISABLE_EMOJIS=true to leave the emoji out.

Types:
` + message.Legend(),
		Example: `  qit commit feature "Add login page"
  qit c fix "Handle empty input" --area parser
  echo "Bump cobra" | qit commit deps -
  qit commit -i`,
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompleteCommitTypes,
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return helpers.UsageArgs(cobra.MaximumNArgs(2))(cmd, args)
			}
			return helpers.UsageArgs(cobra.ExactArgs(2))(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commitOptionsFromArgs(cmd, args, area, interactive)
			if err != nil {
				return err
			}
			opts.NoVerify = noVerify

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&area, "area", "a", "", "Scope of the change, shown in parentheses after the type")
	cmd.Flags().BoolVarP(&noVerify, "no-verify", "n", false, "Bypass the pre-commit and commit-msg hooks")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the type, area and message that were not given")

	return cmd
}

// commitOptionsFromArgs resolves the commit type, area and message from the
// positional arguments, prompting for missing ones in interactive mode.
func commitOptionsFromArgs(cmd *cobra.Command, args []string, area string, interactive bool) (actions.CommitOptions, error) {
	var typeName, text string
	if len(args) > 0 {
		typeName = args[0]
	}
	if len(args) > 1 {
		text = args[1]
	}

	if typeName == "" {
		choices := make([]tui.Choice, 0, len(message.AllTypes()))
		for _, t := range message.AllTypes() {
			choices = append(choices, tui.Choice{Value: t.String(), Description: t.Emoji() + "  " + t.Description()})
		}
		selected, err := tui.PromptSelect("Type of change:", choices)
		if err != nil {
			return actions.CommitOptions{}, promptErr(err)
		}
		typeName = selected
	}

	commitType, err := message.ParseType(typeName)
	if err != nil {
		return actions.CommitOptions{}, qiterrors.NewUsageError(err)
	}

	if interactive && !cmd.Flags().Changed("area") && len(args) < 2 {
		area, err = tui.PromptInput("Area (optional):", false)
		if err != nil {
			return actions.CommitOptions{}, promptErr(err)
		}
	}

	if text == "-" {
		piped, err := utils.ReadPipedInput(cmd.InOrStdin())
		if err != nil {
			return actions.CommitOptions{}, fmt.Errorf("failed to read message from stdin: %w", err)
		}
		text = utils.FirstLine(piped)
		if text == "" {
			return actions.CommitOptions{}, qiterrors.NewUsageError(errors.New("no message on standard input"))
		}
	}

	if text == "" {
		text, err = tui.PromptInput("Message:", true)
		if err != nil {
			return actions.CommitOptions{}, promptErr(err)
		}
	}

	return actions.CommitOptions{
		Type:    commitType,
		Area:    area,
		Message: text,
	}, nil
}

func promptErr(err error) error {
	if errors.Is(err, tui.ErrInteractiveDisabled) {
		return qiterrors.NewUsageError(errors.New("missing arguments and the session is not interactive"))
	}
	return err
}
