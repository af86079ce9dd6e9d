package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/matcher"
	"github.com/mydehq/tagrename/internal/tagger"
	"github.com/mydehq/tagrename/internal/types"
	"github.com/mydehq/tagrename/internal/ui"
	"github.com/spf13/cobra"
)

var flagInspectConvention string

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Show the tags and episode info detected for each file",
	Long: "Scans the directory and prints, for every file, the tags extracted under the " +
		"chosen convention and the season, episode and segment inferred from them. Nothing is renamed.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		conv, err := types.ParseConvention(flagInspectConvention)
		if err != nil {
			return err
		}
		return runInspect(cmd.OutOrStdout(), path, conv)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&flagInspectConvention, "convention", "c", "1",
		"tag convention: 1-5 or square, round, fullwidth, dot, none")
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(w io.Writer, path string, conv types.Convention) error {
	scan, err := config.Scan(path, globalCfg.Formats)
	if err != nil {
		return err
	}

	if len(scan.Files) == 0 {
		fmt.Fprintf(w, "No files found in: %s\n", ui.StylePath.Render(scan.Dir))
		return nil
	}

	fmt.Fprintf(w, "%s in: %s (%s)\n", ui.StyleHeader.Render("Detected tags"), ui.StylePath.Render(scan.Dir), conv)
	for _, f := range scan.Files {
		tags := tagger.Extract(f.Stem, conv)
		rec := matcher.Analyze(f.Stem, tags, conv)
		fmt.Fprintf(w, " %s %s\n", ui.StyleDim.Render("-"), f.Name)
		fmt.Fprintf(w, "   %s %s\n", ui.StyleDim.Render("tags:"), formatTags(tags))
		fmt.Fprintf(w, "   %s %s\n", ui.StyleDim.Render("info:"), describeRecord(rec))
	}
	return nil
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ui.StyleDim.Render("(none)")
	}
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return strings.Join(quoted, ", ")
}

func describeRecord(rec types.EpisodeRecord) string {
	if !rec.Recognized() {
		return ui.StyleWarn.Render("unrecognized")
	}
	var parts []string
	if rec.Season != nil {
		parts = append(parts, fmt.Sprintf("season=%d", *rec.Season))
	}
	parts = append(parts, fmt.Sprintf("episode=%d", *rec.Episode))
	if rec.Segment != "" {
		parts = append(parts, "segment="+rec.Segment)
	}
	return strings.Join(parts, " ")
}
