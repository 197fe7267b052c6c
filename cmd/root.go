package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traitsort",
	Short: "Personality trait sorting test",
	Long: "traitsort narrows 40 statements down over three rounds and scores\n" +
		"the eight primary traits and three bipolar axes behind your picks.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (overrides TRAITSORT_CONFIG)")
	pf.String("bank", "", "Path to a question bank JSON file (overrides bank_file)")
	pf.String("log-file", "", "Write JSON logs to this file (overrides log_file)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides log_level)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(versionCmd)
}
