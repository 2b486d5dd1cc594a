package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCommand = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the resume theme",
	RunE:  runTheme,
}

var (
	themeColor string
	themeFont  string
)

func init() {
	themeCommand.Flags().StringVar(&themeColor, "color", "", "Section band color as #rrggbb")
	themeCommand.Flags().StringVar(&themeFont, "font", "", "Body font family")
	rootCmd.AddCommand(themeCommand)
}

func runTheme(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, storage, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	if themeColor != "" {
		st.SetThemeColor(themeColor)
	}
	if themeFont != "" {
		st.SetThemeFont(themeFont)
	}

	theme := st.Document().Theme
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("color:"), valueStyle.Render(theme.Color))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("font:"), valueStyle.Render(theme.Font))
	return nil
}
