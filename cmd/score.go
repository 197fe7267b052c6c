package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/traitsort/internal/replay"
	"github.com/abhisek/traitsort/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score <picks.json>",
	Short: "Score a recorded set of picks without the UI",
	Long: "score replays a picks file round by round and prints the resulting\n" +
		"scores, axis percentages and per-group history.\n\n" +
		`The file looks like {"rounds": [{"1": ["label", ...], "2": [...]}, ...]}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.logger.Sync() }()

		picks, err := replay.LoadPicks(args[0])
		if err != nil {
			return err
		}

		s := session.New(e.bank, session.WithLogger(e.logger))
		if err := replay.Run(s, picks); err != nil {
			return err
		}

		report := replay.BuildReport(s)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.WriteJSON(cmd.OutOrStdout())
		}
		return report.WriteText(cmd.OutOrStdout())
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the report as JSON")
}
