package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when a prompt is needed but the session is not interactive
var ErrInteractiveDisabled = errors.New("interactive prompts need a terminal")

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

// Choice is one option of a select prompt
type Choice struct {
	Value       string
	Description string
}

func askErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCanceled
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// PromptSelect asks the user to pick one of choices and returns its value
func PromptSelect(message string, choices []Choice) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	options := make([]string, 0, len(choices))
	for _, c := range choices {
		options = append(options, c.Value)
	}

	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Description: func(_ string, index int) string {
			return choices[index].Description
		},
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", askErr(err)
	}
	return answer, nil
}

// PromptInput asks for a line of text. Required inputs reject blank answers.
func PromptInput(message string, required bool) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	var answer string
	prompt := &survey.Input{Message: message}
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", askErr(err)
	}
	return strings.TrimSpace(answer), nil
}
