package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/renamer"
	"github.com/mydehq/tagrename/internal/ui"
	"gopkg.in/yaml.v3"
)

// Prompter collects the interactive answers of a rename session.
type Prompter interface {
	Inputs(initial ui.Inputs) (ui.Inputs, error)
	// SeasonLabel returns an empty label when none should be added.
	SeasonLabel() (string, error)
	Confirm(title string) (bool, error)
}

// Session is one interactive rename run over a single directory.
type Session struct {
	Prompter Prompter
	Out      io.Writer
	Formats  []string
	DryRun   bool
	YAML     bool // print the plan as YAML and stop
}

// Run collects inputs, shows the plan, optionally re-plans with a manual
// season label and, once confirmed, renames the valid entries.
func (s *Session) Run(ctx context.Context, dir string) error {
	in, err := s.Prompter.Inputs(ui.Inputs{Dir: dir})
	if err != nil {
		return err
	}

	scan, err := config.Scan(in.Dir, s.Formats)
	if err != nil {
		return err
	}
	logger.Debug("Scanned directory", "dir", scan.Dir, "files", len(scan.Files))

	batch := renamer.Analyze(scan.Files, scan.Existing, in.Convention)
	plan := batch.Plan(in.Series, "")
	if !s.YAML {
		ui.RenderReport(s.Out, plan, "")
	}

	if !batch.HasAutoSeason && len(batch.Items) > 0 {
		label, err := s.Prompter.SeasonLabel()
		if err != nil {
			return err
		}
		if label != "" {
			plan = batch.Plan(in.Series, label)
			if !s.YAML {
				ui.RenderReport(s.Out, plan, "最终修改方案")
			}
		}
	}

	if s.YAML {
		enc := yaml.NewEncoder(s.Out)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return enc.Close()
	}

	if plan.Empty() {
		fmt.Fprintf(s.Out, "\n%s\n", ui.StyleWarn.Render("没有需要修改的文件"))
		return nil
	}

	if s.DryRun {
		logger.Info(ui.StyleDim.Render("Dry run, no files were renamed"))
		return nil
	}

	ok, err := s.Prompter.Confirm("是否确认执行修改？")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(s.Out, "\n%s\n", ui.StyleDim.Render("操作已取消"))
		return nil
	}

	r := renamer.New().WithEvents(func(e renamer.Event) {
		fmt.Fprintf(s.Out, "  %s\n", ui.ColorizeEvent(e))
	})
	ops, err := r.Execute(ctx, plan.Valid)
	success, attempted := renamer.Summary(ops)
	ui.RenderSummary(s.Out, success, attempted)
	if err != nil {
		return fmt.Errorf("rename interrupted: %w", err)
	}
	return nil
}
