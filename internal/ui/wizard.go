package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/tagrename/internal/renamer"
	"github.com/mydehq/tagrename/internal/types"
)

// Inputs are the parameters collected before planning.
type Inputs struct {
	Dir        string
	Convention types.Convention
	Series     string
}

// RunInputWizard collects the directory, delimiter convention and series name.
// directory → convention → series. Esc steps back; esc on the first step or
// ctrl+c anywhere returns ErrCancelled. A pre-filled directory skips step 0.
func RunInputWizard(initial Inputs, dryRun bool) (Inputs, error) {
	in := initial
	if !in.Convention.Valid() {
		in.Convention = types.SquareBracket
	}

	step := 0
	if strings.TrimSpace(in.Dir) != "" {
		step = 1
	}

	for step < 3 {
		PrintBanner(dryRun)
		switch step {
		case 0:
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("请输入文件夹绝对路径").
						Description("\nDirectory containing the episode files").
						Value(&in.Dir).
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("path is required")
							}
							return nil
						}),
				),
			))
			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					return in, ErrCancelled
				}
				return in, HandleAbort(err)
			}
			in.Dir = strings.TrimSpace(in.Dir)
			step++

		case 1:
			opts := make([]huh.Option[types.Convention], len(types.Conventions))
			for i, c := range types.Conventions {
				opts[i] = huh.NewOption(fmt.Sprintf("%d. %s", int(c), c.Label()), c)
			}
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[types.Convention]().
						Title("请选择标签符号类型").
						Description("\nHow episode tags are delimited in the filenames\n").
						Options(opts...).
						Value(&in.Convention),
				),
			))
			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					step--
					continue
				}
				return in, HandleAbort(err)
			}
			step++

		case 2:
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("请输入剧集名称").
						Description("\nSeries name used as the first part of every new filename").
						Value(&in.Series).
						Validate(ValidateSeries),
				),
			))
			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					step--
					continue
				}
				return in, HandleAbort(err)
			}
			in.Series = strings.TrimSpace(in.Series)
			step++
		}
	}

	if logger != nil {
		logger.Debug("Inputs collected", "dir", in.Dir, "convention", in.Convention, "series", in.Series)
	}
	return in, nil
}

// ValidateSeries checks a series name can be used as a filename prefix.
func ValidateSeries(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("series name is required")
	}
	return renamer.ValidateName("series name", s)
}
