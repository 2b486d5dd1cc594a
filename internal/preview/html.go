package preview

import (
	_ "embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/resumify/resumify/internal/types"
)

//go:embed resume.html.tmpl
var resumeTemplate string

var pageTmpl = template.Must(template.New("resume").Parse(resumeTemplate))

var safeFontFamily = regexp.MustCompile(`^[A-Za-z0-9 ,\-]+$`)

type experienceView struct {
	DateRange   string
	Role        string
	CompanyLine string
	Bullets     []string
}

type educationView struct {
	DateRange  string
	DegreeLine string
	SchoolLine string
	Score      string
}

type projectView struct {
	Name        string
	Link        string
	Description string
}

type certificationView struct {
	Name   string
	Detail string
}

type pageData struct {
	Title          string
	FontFamily     template.CSS
	FontSize       template.CSS
	ThemeColor     template.CSS
	Accent         template.CSS
	Name           string
	JobTitle       string
	Contact        []string
	Summary        string
	Skills         []string
	Experience     []experienceView
	Education      []educationView
	Projects       []projectView
	Certifications []certificationView
	Languages      []string
}

// Render produces the complete standalone HTML page for the document,
// including the print stylesheet that keeps sections from splitting across
// page boundaries. It reads the document and nothing else.
func Render(doc types.ResumeDocument) (string, error) {
	data := buildPageData(doc)

	var b strings.Builder
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", &RenderError{Message: "failed to execute preview template", Cause: err}
	}
	return b.String(), nil
}

func buildPageData(doc types.ResumeDocument) pageData {
	data := pageData{
		Title:      documentTitle(doc.Personal),
		FontFamily: template.CSS(cssFontFamily(doc.Theme.Font)),
		FontSize:   template.CSS(FontSizePt(doc.Theme.Font)),
		ThemeColor: template.CSS(ThemeFill(doc.Theme.Color)),
		Accent:     template.CSS(AccentColor(doc.Theme.Color)),
		Name:       doc.Personal.FullName,
		JobTitle:   doc.Personal.JobTitle,
		Contact:    ContactItems(doc.Personal),
	}
	if data.Name == "" {
		data.Name = "YOUR NAME"
	}
	if strings.TrimSpace(doc.Personal.Summary) != "" {
		data.Summary = doc.Personal.Summary
	}

	for _, s := range doc.Skills {
		data.Skills = append(data.Skills, s.Name)
	}

	for _, exp := range doc.Experience {
		companyLine := exp.Company
		if exp.Location != "" {
			companyLine += ", " + exp.Location
		}
		data.Experience = append(data.Experience, experienceView{
			DateRange:   DateRange(exp.StartDate, exp.EndDate, exp.Current),
			Role:        exp.Role,
			CompanyLine: companyLine,
			Bullets:     DescriptionBullets(exp.Description),
		})
	}

	for _, edu := range doc.Education {
		degree := edu.Degree
		if edu.FieldOfStudy != "" {
			degree += fmt.Sprintf(" (%s)", edu.FieldOfStudy)
		}
		if edu.Board != "" {
			degree += " | " + edu.Board
		}
		school := edu.Institution
		if edu.Location != "" {
			school += ", " + edu.Location
		}
		data.Education = append(data.Education, educationView{
			DateRange:  DateRange(edu.StartDate, edu.EndDate, false),
			DegreeLine: degree,
			SchoolLine: school,
			Score:      edu.Score,
		})
	}

	for _, proj := range doc.Projects {
		data.Projects = append(data.Projects, projectView{
			Name:        proj.Name,
			Link:        proj.Link,
			Description: proj.Description,
		})
	}

	for _, cert := range doc.Certifications {
		var detail []string
		if cert.Issuer != "" {
			detail = append(detail, cert.Issuer)
		}
		if cert.Date != "" {
			detail = append(detail, cert.Date)
		}
		data.Certifications = append(data.Certifications, certificationView{
			Name:   cert.Name,
			Detail: strings.Join(detail, ", "),
		})
	}

	for _, lang := range doc.Languages {
		name := lang.Name
		if lang.Proficiency != "" {
			name += fmt.Sprintf(" (%s)", lang.Proficiency)
		}
		data.Languages = append(data.Languages, name)
	}

	return data
}

// documentTitle is the page title, which doubles as the suggested file name
// when the browser prints the page. It is derived, never stored, so the print
// path needs no save/restore of global display state.
func documentTitle(p types.Personal) string {
	if p.FullName == "" {
		return "Resume_Resumify"
	}
	return strings.Join(strings.Fields(p.FullName), "_") + "_Resume_Resumify"
}

func cssFontFamily(font string) string {
	family := strings.ReplaceAll(font, `"`, "")
	if family == "" || !safeFontFamily.MatchString(family) {
		family = types.DefaultThemeFont
	}
	return family
}
