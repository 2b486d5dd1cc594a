package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCommand = &cobra.Command{
	Use:   "reset",
	Short: "Reset the resume to the blank defaults",
	Long:  "Replaces the stored resume with the blank defaults and clears the database. This cannot be undone, so it asks for confirmation unless --yes is given.",
	RunE:  runReset,
}

var resetYes bool

func init() {
	resetCommand.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCommand)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		fmt.Fprint(cmd.OutOrStdout(), "This will erase all resume data. Type 'yes' to continue: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
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

	st.Reset()
	fmt.Fprintln(cmd.OutOrStdout(), "Resume reset to defaults.")
	return nil
}
