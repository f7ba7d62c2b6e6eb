package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoresheet/pkg/io"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
)

// infoCommand creates the info command, which summarizes a chart without
// rendering it.
func (c *CLI) infoCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:               "info <input-chart>",
		Short:             "Show chart metadata and note counts",
		Args:              exactArgsWithUsage(1),
		ValidArgsFunction: positionalFiles(chartExts),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			doc, err := io.ImportJSON(args[0], loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			l, err := layout.ForDocument(cfg.Layout, doc)
			if err != nil {
				return err
			}

			m, s := doc.MetaData, doc.Stats()
			w := c.out
			printKeyValue(w, "title", StyleTitle.Render(m.Title))
			printKeyValue(w, "difficulty", StyleDifficulty.Render(m.Difficulty))
			printKeyValue(w, "level", strconv.Itoa(m.Level))
			printKeyValue(w, "combo", strconv.Itoa(m.Combo))
			printKeyValue(w, "bpm", strconv.FormatFloat(m.Bpm, 'f', -1, 64))
			printKeyValue(w, "notes", StyleNumber.Render(strconv.Itoa(len(doc.Notes))))
			printDetail(w, "%d taps · %d slides · %d specials", s.Taps, s.Slides, s.Specials)
			printDetail(w, "%d flicks · %d skills · %d slide ticks", s.Flicks, s.Skills, s.Ticks)
			printKeyValue(w, "bars", StyleNumber.Render(strconv.Itoa(l.NumberOfBars)))
			printKeyValue(w, "columns", StyleNumber.Render(strconv.Itoa(l.Columns())))
			if s.Taps+s.Slides == 0 {
				printWarning(w, "chart has no visible notes")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file used for the column count")
	_ = cmd.MarkFlagFilename("config", configExts...)
	return cmd
}
