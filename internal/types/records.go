// Package types provides type definitions for the resume document and its sections.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section name constants. Repeated sections hold ordered record sequences;
// "personal" and "theme" are singleton objects replaced wholesale.
const (
	SectionPersonal       = "personal"
	SectionTheme          = "theme"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

// RepeatedSections lists the six record sections in their canonical storage order.
var RepeatedSections = []string{
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionCertifications,
	SectionLanguages,
}

// IsRepeatedSection reports whether name refers to one of the six record sections.
func IsRepeatedSection(name string) bool {
	for _, s := range RepeatedSections {
		if s == name {
			return true
		}
	}
	return false
}

// Personal holds the free-text identity fields. It has no record identity and
// is replaced wholesale on edit.
type Personal struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Theme drives rendering for both the preview and the exported document.
type Theme struct {
	Color string `json:"color"`
	Font  string `json:"font"`
}

// Education represents one entry in the education section.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Board        string `json:"board"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Score        string `json:"score"`
}

// Experience represents one entry in the work experience section.
// EndDate is kept even while Current is true; renderers display "Present"
// instead of the stored value without clearing it.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Project represents one entry in the projects section.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Skill represents one entry in the skills section.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Certification represents one entry in the certifications section.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language represents one entry in the languages section.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}
