package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/resumify/resumify/internal/types"
)

// Exporter renders resume documents to DOCX. The base template carries the
// package skeleton (content types, relationships, bullet numbering); the
// exporter rewrites its document body from the resume data.
type Exporter struct {
	TemplatePath string
}

// New returns an Exporter using the base .docx at templatePath.
func New(templatePath string) *Exporter {
	return &Exporter{TemplatePath: templatePath}
}

// DOCX renders the document to DOCX bytes. It only reads the resume
// document; a failure leaves no partial state behind.
func (e *Exporter) DOCX(doc types.ResumeDocument) ([]byte, error) {
	tmpl, err := docx.ReadDocxFile(e.TemplatePath)
	if err != nil {
		return nil, &ExportError{Message: fmt.Sprintf("failed to read base template %s", e.TemplatePath), Cause: err}
	}
	defer tmpl.Close()

	edit := tmpl.Editable()
	edit.SetContent(buildDocumentXML(doc))

	var buf bytes.Buffer
	if err := edit.Write(&buf); err != nil {
		return nil, &ExportError{Message: "failed to write docx", Cause: err}
	}
	return buf.Bytes(), nil
}

func buildDocumentXML(doc types.ResumeDocument) string {
	b := &xmlBuilder{
		font:     fontFamily(doc.Theme.Font),
		bodySize: FontSizeHalfPoints(doc.Theme.Font),
		fill:     shadingFill(doc.Theme.Color),
	}

	writeHeader(b, doc.Personal)

	for _, title := range VisibleSections(doc) {
		b.sectionHeading(title)
		switch title {
		case "PROFESSIONAL SUMMARY":
			b.para(`<w:jc w:val="both"/><w:spacing w:after="300"/>`, b.run(doc.Personal.Summary, runOpts{}))
		case "SKILLS":
			for _, s := range doc.Skills {
				b.bulletPara(s.Name)
			}
		case "INTERNSHIP & WORK EXPERIENCE":
			writeExperience(b, doc.Experience)
		case "EDUCATION":
			writeEducation(b, doc.Education)
		case "PROJECTS":
			writeProjects(b, doc.Projects)
		case "CERTIFICATIONS & TRAININGS":
			for _, c := range doc.Certifications {
				line := c.Name
				if c.Issuer != "" {
					line += ", " + c.Issuer
				}
				if c.Date != "" {
					line += " (" + c.Date + ")"
				}
				b.bulletPara(line)
			}
		case "LANGUAGES KNOWN":
			for _, l := range doc.Languages {
				line := l.Name
				if l.Proficiency != "" {
					line += " (" + l.Proficiency + ")"
				}
				b.bulletPara(line)
			}
		}
	}

	return b.document()
}

func writeHeader(b *xmlBuilder, p types.Personal) {
	name := p.FullName
	if name == "" {
		name = "Your Name"
	}
	b.centeredPara(100, b.run(strings.ToUpper(name), runOpts{Bold: true, Size: 48}))
	if p.JobTitle != "" {
		b.centeredPara(200, b.run(strings.ToUpper(p.JobTitle), runOpts{}))
	}

	items := ContactItems(p)
	var runs []string
	for i, item := range items {
		if i > 0 {
			runs = append(runs, b.run("  •  ", runOpts{}))
		}
		runs = append(runs, b.run(item, runOpts{}))
	}
	b.centeredPara(400, runs...)
}

func writeExperience(b *xmlBuilder, items []types.Experience) {
	for _, exp := range items {
		b.para(`<w:spacing w:before="100"/>`, b.run(exp.Role, runOpts{Bold: true, Size: 24}))

		company := exp.Company
		if exp.Location != "" {
			company += ", " + exp.Location
		}
		dates := DateRange(exp.StartDate, exp.EndDate, exp.Current)
		runs := []string{b.run(company, runOpts{Italic: true})}
		if dates != "" {
			runs = append(runs, b.run(" | "+dates, runOpts{Bold: true}))
		}
		b.para(`<w:spacing w:after="100"/>`, runs...)

		for _, line := range DescriptionBullets(exp.Description) {
			b.bulletPara(line)
		}
	}
}

func writeEducation(b *xmlBuilder, items []types.Education) {
	for _, edu := range items {
		degree := edu.Degree
		if edu.FieldOfStudy != "" {
			degree += " (" + edu.FieldOfStudy + ")"
		}
		if edu.Board != "" {
			degree += " | " + edu.Board
		}
		school := edu.Institution
		if edu.Location != "" {
			school += ", " + edu.Location
		}
		b.para(`<w:spacing w:before="100"/>`,
			b.run(degree, runOpts{Bold: true}),
			b.run(" - "+school, runOpts{}))

		line := DateRange(edu.StartDate, edu.EndDate, false)
		if edu.Score != "" {
			line += " | Score: " + edu.Score
		}
		if line != "" {
			b.para(`<w:spacing w:after="200"/>`, b.run(line, runOpts{}))
		}
	}
}

func writeProjects(b *xmlBuilder, items []types.Project) {
	for _, proj := range items {
		runs := []string{b.run(proj.Name, runOpts{Bold: true, Size: 24})}
		if proj.Link != "" {
			runs = append(runs, b.run(" ("+proj.Link+")", runOpts{}))
		}
		b.para(`<w:spacing w:before="100"/>`, runs...)
		if proj.Description != "" {
			b.para(`<w:spacing w:after="200"/>`, b.run(proj.Description, runOpts{}))
		}
	}
}
