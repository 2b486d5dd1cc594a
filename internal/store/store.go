// Package store provides the single authority for reading and mutating the
// resume document. Every mutation is persisted synchronously to the backing
// Storage, and readers always observe a consistent snapshot.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/resumify/resumify/internal/types"
)

// Storage is the durable slot holding one serialized document. Load reports
// whether a document was present at all; Clear removes it.
type Storage interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
	Clear() error
}

// Store owns the canonical resume document. Instances are created per
// Storage, never shared as process-wide singletons, so tests can use a fresh
// store each.
type Store struct {
	mu      sync.Mutex
	doc     types.ResumeDocument
	storage Storage
}

// Open loads the document from storage, merging it over the canonical
// defaults. Missing or corrupt storage falls back to defaults without
// failing: corrupt persisted state is recovered locally, never surfaced.
func Open(storage Storage) *Store {
	s := &Store{storage: storage}

	raw, ok, err := storage.Load()
	if err != nil {
		log.Printf("warning: failed to load resume document: %v", err)
		s.doc = types.DefaultDocument()
		return s
	}
	if !ok {
		s.doc = types.DefaultDocument()
		return s
	}

	doc, err := types.ParseDocument(raw)
	if err != nil {
		log.Printf("warning: stored resume document is corrupt, using defaults: %v", err)
		s.doc = types.DefaultDocument()
		return s
	}
	s.doc = doc
	return s
}

// Document returns a deep-copy snapshot of the current document.
func (s *Store) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// ReplacePersonal replaces the personal section wholesale.
func (s *Store) ReplacePersonal(p types.Personal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Personal = p
	s.persistLocked()
}

// ReplaceTheme replaces the theme section wholesale.
func (s *Store) ReplaceTheme(t types.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Theme = t
	s.persistLocked()
}

// SetThemeColor updates only the theme color.
func (s *Store) SetThemeColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Theme.Color = color
	s.persistLocked()
}

// SetThemeFont updates only the theme font.
func (s *Store) SetThemeFont(font string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Theme.Font = font
	s.persistLocked()
}

// AppendRecord decodes fields into a record of the named repeated section,
// assigns it a freshly generated id, and appends it at the end of the
// sequence. The generated id is returned. Any "id" present in fields is
// ignored; identity is always issued here.
func (s *Store) AppendRecord(section string, fields json.RawMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	switch section {
	case types.SectionEducation:
		var rec types.Education
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Education = append(s.doc.Education, rec)
	case types.SectionExperience:
		var rec types.Experience
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Experience = append(s.doc.Experience, rec)
	case types.SectionProjects:
		var rec types.Project
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Projects = append(s.doc.Projects, rec)
	case types.SectionSkills:
		var rec types.Skill
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Skills = append(s.doc.Skills, rec)
	case types.SectionCertifications:
		var rec types.Certification
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Certifications = append(s.doc.Certifications, rec)
	case types.SectionLanguages:
		var rec types.Language
		if err := json.Unmarshal(fields, &rec); err != nil {
			return "", &RecordError{Section: section, Cause: err}
		}
		rec.ID = id
		s.doc.Languages = append(s.doc.Languages, rec)
	default:
		return "", &UnknownSectionError{Section: section}
	}

	s.persistLocked()
	return id, nil
}

// UpdateRecord overwrites the listed fields of the record with the given id,
// leaving all other fields and the record's position untouched. An unknown id
// is a silent no-op, not an error, so replaying the same action is safe.
// The record's id itself cannot be changed.
func (s *Store) UpdateRecord(section, id string, fields json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var err error
	switch section {
	case types.SectionEducation:
		for i := range s.doc.Education {
			if s.doc.Education[i].ID == id {
				rec := s.doc.Education[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Education[i] = rec
					found = true
				}
				break
			}
		}
	case types.SectionExperience:
		for i := range s.doc.Experience {
			if s.doc.Experience[i].ID == id {
				rec := s.doc.Experience[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Experience[i] = rec
					found = true
				}
				break
			}
		}
	case types.SectionProjects:
		for i := range s.doc.Projects {
			if s.doc.Projects[i].ID == id {
				rec := s.doc.Projects[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Projects[i] = rec
					found = true
				}
				break
			}
		}
	case types.SectionSkills:
		for i := range s.doc.Skills {
			if s.doc.Skills[i].ID == id {
				rec := s.doc.Skills[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Skills[i] = rec
					found = true
				}
				break
			}
		}
	case types.SectionCertifications:
		for i := range s.doc.Certifications {
			if s.doc.Certifications[i].ID == id {
				rec := s.doc.Certifications[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Certifications[i] = rec
					found = true
				}
				break
			}
		}
	case types.SectionLanguages:
		for i := range s.doc.Languages {
			if s.doc.Languages[i].ID == id {
				rec := s.doc.Languages[i]
				if err = json.Unmarshal(fields, &rec); err == nil {
					rec.ID = id
					s.doc.Languages[i] = rec
					found = true
				}
				break
			}
		}
	default:
		return &UnknownSectionError{Section: section}
	}

	if err != nil {
		return &RecordError{Section: section, Cause: err}
	}
	if found {
		s.persistLocked()
	}
	return nil
}

// RemoveRecord removes exactly the record with the given id, preserving the
// relative order of the survivors. An unknown id is a silent no-op.
func (s *Store) RemoveRecord(section, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	switch section {
	case types.SectionEducation:
		out := s.doc.Education[:0]
		for _, rec := range s.doc.Education {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Education = out
	case types.SectionExperience:
		out := s.doc.Experience[:0]
		for _, rec := range s.doc.Experience {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Experience = out
	case types.SectionProjects:
		out := s.doc.Projects[:0]
		for _, rec := range s.doc.Projects {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Projects = out
	case types.SectionSkills:
		out := s.doc.Skills[:0]
		for _, rec := range s.doc.Skills {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Skills = out
	case types.SectionCertifications:
		out := s.doc.Certifications[:0]
		for _, rec := range s.doc.Certifications {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Certifications = out
	case types.SectionLanguages:
		out := s.doc.Languages[:0]
		for _, rec := range s.doc.Languages {
			if rec.ID == id {
				found = true
				continue
			}
			out = append(out, rec)
		}
		s.doc.Languages = out
	default:
		return &UnknownSectionError{Section: section}
	}

	if found {
		s.persistLocked()
	}
	return nil
}

// ReplaceDocument swaps in a complete document, typically one imported from a
// validated JSON file. Records without ids are assigned fresh ones.
func (s *Store) ReplaceDocument(doc types.ResumeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range doc.Education {
		if doc.Education[i].ID == "" {
			doc.Education[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Experience {
		if doc.Experience[i].ID == "" {
			doc.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Skills {
		if doc.Skills[i].ID == "" {
			doc.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Certifications {
		if doc.Certifications[i].ID == "" {
			doc.Certifications[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Languages {
		if doc.Languages[i].ID == "" {
			doc.Languages[i].ID = uuid.NewString()
		}
	}

	s.doc = doc
	s.persistLocked()
}

// Reset replaces the document with the canonical defaults and clears durable
// storage. Callers must have obtained explicit user confirmation first; this
// operation is irreversible.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = types.DefaultDocument()
	if err := s.storage.Clear(); err != nil {
		log.Printf("warning: failed to clear resume storage: %v", err)
	}
}

// persistLocked writes the full current document to storage. A write failure
// is logged and swallowed; it must never crash the mutation path.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.doc)
	if err != nil {
		log.Printf("warning: failed to serialize resume document: %v", err)
		return
	}
	if err := s.storage.Save(data); err != nil {
		log.Printf("warning: failed to persist resume document: %v", err)
	}
}
