package types

import (
	"encoding/json"
	"fmt"
)

// Default theme values. The color is the peach band used for section titles;
// renderers fall back to it whenever the stored color is missing or malformed.
const (
	DefaultThemeColor = "#ffe4d1"
	DefaultThemeFont  = "Calibri"
)

// ResumeDocument is the root aggregate: one document per user session.
// All six repeated sections are always present (possibly empty), and
// unknown top-level keys read from storage are preserved in Extra so they
// survive a load/save round trip.
type ResumeDocument struct {
	Personal       Personal        `json:"personal"`
	Theme          Theme           `json:"theme"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`

	Extra map[string]json.RawMessage `json:"-"`
}

// DefaultDocument returns the canonical default document: empty personal
// fields, the default theme, and six empty (non-nil) record sections.
func DefaultDocument() ResumeDocument {
	return ResumeDocument{
		Theme: Theme{
			Color: DefaultThemeColor,
			Font:  DefaultThemeFont,
		},
		Education:      []Education{},
		Experience:     []Experience{},
		Projects:       []Project{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Languages:      []Language{},
	}
}

// ParseDocument decodes a stored document and shallow-merges it over the
// canonical defaults. Precedence is explicit: a top-level key present in the
// stored data replaces the default wholesale; a missing key keeps its default
// value, so documents saved by older versions gain newly introduced sections.
// Unknown keys are retained in Extra.
func ParseDocument(raw []byte) (ResumeDocument, error) {
	doc := DefaultDocument()
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ResumeDocument{}, fmt.Errorf("failed to parse resume document: %w", err)
	}
	return doc, nil
}

// UnmarshalJSON merges the given JSON onto the receiver: only keys present in
// data are overwritten. Unknown top-level keys land in Extra.
func (d *ResumeDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, val := range raw {
		var err error
		switch key {
		case SectionPersonal:
			err = json.Unmarshal(val, &d.Personal)
		case SectionTheme:
			err = json.Unmarshal(val, &d.Theme)
		case SectionEducation:
			err = json.Unmarshal(val, &d.Education)
		case SectionExperience:
			err = json.Unmarshal(val, &d.Experience)
		case SectionProjects:
			err = json.Unmarshal(val, &d.Projects)
		case SectionSkills:
			err = json.Unmarshal(val, &d.Skills)
		case SectionCertifications:
			err = json.Unmarshal(val, &d.Certifications)
		case SectionLanguages:
			err = json.Unmarshal(val, &d.Languages)
		default:
			if d.Extra == nil {
				d.Extra = map[string]json.RawMessage{}
			}
			d.Extra[key] = val
		}
		if err != nil {
			return fmt.Errorf("invalid %q section: %w", key, err)
		}
	}

	// A stored null for a repeated section must not leave it nil.
	d.ensureSections()
	return nil
}

// MarshalJSON emits all known sections plus any preserved unknown keys.
func (d ResumeDocument) MarshalJSON() ([]byte, error) {
	type alias ResumeDocument
	known, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, val := range d.Extra {
		if _, exists := merged[key]; !exists {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}

// Clone returns a deep copy of the document, safe to hand to readers while
// the original keeps mutating.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Education = append([]Education{}, d.Education...)
	out.Experience = append([]Experience{}, d.Experience...)
	out.Projects = append([]Project{}, d.Projects...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Certifications = append([]Certification{}, d.Certifications...)
	out.Languages = append([]Language{}, d.Languages...)
	if d.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(d.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = append(json.RawMessage{}, v...)
		}
	}
	return out
}

func (d *ResumeDocument) ensureSections() {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
}
