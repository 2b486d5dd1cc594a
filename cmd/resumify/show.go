package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/preview"
	"github.com/resumify/resumify/internal/types"
)

var showCommand = &cobra.Command{
	Use:   "show",
	Short: "Show the stored resume data",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCommand)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, storage, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	doc := st.Document()
	out := cmd.OutOrStdout()

	name := doc.Personal.FullName
	if name == "" {
		name = "(unnamed resume)"
	}
	fmt.Fprintln(out, titleStyle.Render(name))
	if doc.Personal.JobTitle != "" {
		fmt.Fprintln(out, valueStyle.Render(doc.Personal.JobTitle))
	}
	if contact := strings.Join(preview.ContactItems(doc.Personal), " | "); contact != "" {
		fmt.Fprintln(out, mutedStyle.Render(contact))
	}
	fmt.Fprintln(out, mutedStyle.Render(
		fmt.Sprintf("theme: %s / %s", doc.Theme.Color, doc.Theme.Font)))

	if strings.TrimSpace(doc.Personal.Summary) != "" {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleSummary))
		fmt.Fprintln(out, valueStyle.Render(doc.Personal.Summary))
	}

	if len(doc.Skills) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleSkills))
		for _, s := range doc.Skills {
			fmt.Fprintln(out, valueStyle.Render("  - "+s.Name))
		}
	}

	if len(doc.Experience) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleExperience))
		for _, exp := range doc.Experience {
			dates := preview.DateRange(exp.StartDate, exp.EndDate, exp.Current)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(exp.Role), mutedStyle.Render(dates))
			fmt.Fprintln(out, valueStyle.Render("  "+exp.Company))
			for _, line := range preview.DescriptionBullets(exp.Description) {
				fmt.Fprintln(out, valueStyle.Render("  - "+line))
			}
			fmt.Fprintln(out, mutedStyle.Render("  id: "+exp.ID))
		}
	}

	if len(doc.Education) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleEducation))
		for _, edu := range doc.Education {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(edu.Degree), valueStyle.Render(edu.Institution))
			fmt.Fprintln(out, mutedStyle.Render("  id: "+edu.ID))
		}
	}

	if len(doc.Projects) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleProjects))
		for _, proj := range doc.Projects {
			fmt.Fprintln(out, labelStyle.Render(proj.Name))
			fmt.Fprintln(out, mutedStyle.Render("  id: "+proj.ID))
		}
	}

	if len(doc.Certifications) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleCertifications))
		for _, cert := range doc.Certifications {
			fmt.Fprintln(out, valueStyle.Render("  - "+certLine(cert)))
		}
	}

	if len(doc.Languages) > 0 {
		fmt.Fprintln(out, titleStyle.Render(preview.TitleLanguages))
		for _, lang := range doc.Languages {
			line := lang.Name
			if lang.Proficiency != "" {
				line += " (" + lang.Proficiency + ")"
			}
			fmt.Fprintln(out, valueStyle.Render("  - "+line))
		}
	}

	return nil
}

func certLine(c types.Certification) string {
	line := c.Name
	if c.Issuer != "" {
		line += ", " + c.Issuer
	}
	if c.Date != "" {
		line += " (" + c.Date + ")"
	}
	return line
}
