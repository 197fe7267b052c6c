package cmd

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/traitsort/internal/bank"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.logger.Sync() }()

		_, err = cmd.OutOrStdout().Write([]byte(groupsTable(e.bank) + "\n"))
		return err
	},
}

func groupsTable(b *bank.Bank) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Group", "#", "Option", "Trait")
	for _, g := range b.Groups() {
		for _, opt := range g.Options {
			trait := string(opt.Trait)
			if !opt.Scores() {
				trait += " (no score)"
			}
			t.Row(g.Title, strconv.Itoa(opt.Index+1), opt.Label, trait)
		}
	}
	return t.String()
}
