package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/suggest"
	"github.com/resumify/resumify/internal/types"
)

var suggestCommand = &cobra.Command{
	Use:   "suggest <role>",
	Short: "Generate bullet point suggestions for a role",
	Long:  "Looks the role up in the built-in suggestion table and prints three matching bullet points. With --apply, appends them to an experience record's description.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var suggestApplyID string

func init() {
	suggestCommand.Flags().StringVar(&suggestApplyID, "apply", "", "Append the suggestions to the experience record with this id")
	rootCmd.AddCommand(suggestCommand)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	role := args[0]
	if role == "" {
		return suggest.ErrNoRole
	}

	suggestions := suggest.NewService().Suggest(role)
	for _, bullet := range suggestions {
		fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(bullet))
	}

	if suggestApplyID == "" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, storage, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	var target *types.Experience
	doc := st.Document()
	for i := range doc.Experience {
		if doc.Experience[i].ID == suggestApplyID {
			target = &doc.Experience[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no experience record with id %s", suggestApplyID)
	}

	fields, err := json.Marshal(map[string]string{
		"description": suggest.Apply(target.Description, suggestions),
	})
	if err != nil {
		return err
	}
	if err := st.UpdateRecord(types.SectionExperience, suggestApplyID, fields); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d suggestions to %s\n", len(suggestions), suggestApplyID)
	return nil
}
