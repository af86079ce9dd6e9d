package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/tagrename/internal/renamer"
)

// FormPrompter collects interactive input through huh forms.
type FormPrompter struct {
	DryRun bool
}

// Inputs runs the input wizard.
func (p FormPrompter) Inputs(initial Inputs) (Inputs, error) {
	return RunInputWizard(initial, p.DryRun)
}

// SeasonLabel asks whether to add a manual season label and reads it.
// An empty label means the user changed their mind.
func (p FormPrompter) SeasonLabel() (string, error) {
	for {
		add := false
		err := RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("检测到无季数信息，是否添加自定义季数？").
					Affirmative("Yes").
					Negative("No").
					Value(&add),
			),
		))
		if err != nil {
			if errors.Is(HandleAbort(err), ErrUserBack) {
				return "", nil
			}
			return "", HandleAbort(err)
		}
		if !add {
			return "", nil
		}

		label := ""
		err = RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("请输入完整季数文本（如：第一季）").
					Description("\nInserted verbatim. Leave empty to skip").
					Value(&label).
					Validate(func(s string) error {
						return renamer.ValidateSeasonLabel(strings.TrimSpace(s))
					}),
			),
		))
		if err != nil {
			if errors.Is(HandleAbort(err), ErrUserBack) {
				continue
			}
			return "", HandleAbort(err)
		}

		label = strings.TrimSpace(label)
		if label == "" && logger != nil {
			logger.Info(StyleDim.Render("Empty season label, no season will be added"))
		}
		return label, nil
	}
}

// Confirm shows a yes/no prompt. Going back counts as no.
func (p FormPrompter) Confirm(title string) (bool, error) {
	ok := false
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	))
	if err != nil {
		if errors.Is(HandleAbort(err), ErrUserBack) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", HandleAbort(err))
	}
	return ok, nil
}
