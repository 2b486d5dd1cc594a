package store

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumify/resumify/internal/types"
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	return Open(storage), storage
}

func TestOpen_EmptyStorageUsesDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, types.DefaultDocument(), s.Document())
}

func TestOpen_CorruptStorageFallsBackToDefaults(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Seed([]byte("{definitely not json"))

	s := Open(storage)
	assert.Equal(t, types.DefaultDocument(), s.Document())
}

func TestOpen_MergeBackfillsMissingSections(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Seed([]byte(`{
		"personal": {"fullName": "Ada Lovelace"},
		"skills": [{"id": "s1", "name": "Mathematics"}]
	}`))

	s := Open(storage)
	doc := s.Document()

	assert.Equal(t, "Ada Lovelace", doc.Personal.FullName)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Mathematics", doc.Skills[0].Name)
	// Sections missing from the stored document exist with default values.
	assert.NotNil(t, doc.Languages)
	assert.Empty(t, doc.Languages)
	assert.Equal(t, types.DefaultThemeColor, doc.Theme.Color)
}

func TestStore_RoundTrip(t *testing.T) {
	s, storage := newTestStore(t)

	s.ReplacePersonal(types.Personal{FullName: "Grace Hopper", Email: "grace@navy.mil"})
	s.SetThemeColor("#2563eb")
	_, err := s.AppendRecord(types.SectionExperience, json.RawMessage(`{
		"company": "Navy", "role": "Engineer", "startDate": "01/1944", "current": true
	}`))
	require.NoError(t, err)
	_, err = s.AppendRecord(types.SectionSkills, json.RawMessage(`{"name": "COBOL"}`))
	require.NoError(t, err)

	before := s.Document()
	reloaded := Open(storage)
	assert.Equal(t, before, reloaded.Document())
}

func TestAppendRecord_AssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := s.AppendRecord(types.SectionSkills, json.RawMessage(fmt.Sprintf(`{"name": "skill-%d"}`, i)))
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id issued: %s", id)
		seen[id] = true
	}
	assert.Len(t, s.Document().Skills, 50)
}

func TestAppendRecord_AppendsAtEnd(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.AppendRecord(types.SectionEducation, json.RawMessage(`{"institution": "MIT"}`))
	require.NoError(t, err)
	second, err := s.AppendRecord(types.SectionEducation, json.RawMessage(`{"institution": "Yale"}`))
	require.NoError(t, err)

	doc := s.Document()
	require.Len(t, doc.Education, 2)
	assert.Equal(t, first, doc.Education[0].ID)
	assert.Equal(t, second, doc.Education[1].ID)
}

func TestAppendRecord_IgnoresCallerSuppliedID(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.AppendRecord(types.SectionSkills, json.RawMessage(`{"id": "mine", "name": "Go"}`))
	require.NoError(t, err)
	assert.NotEqual(t, "mine", id)
	assert.Equal(t, id, s.Document().Skills[0].ID)
}

func TestAppendRecord_UnknownSection(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AppendRecord("personal", json.RawMessage(`{}`))
	var sectionErr *UnknownSectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, "personal", sectionErr.Section)
}

func TestUpdateRecord_PartialUpdate(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.AppendRecord(types.SectionExperience, json.RawMessage(`{
		"company": "Acme", "role": "Engineer", "startDate": "01/2020", "endDate": "06/2021"
	}`))
	require.NoError(t, err)

	require.NoError(t, s.UpdateRecord(types.SectionExperience, id, json.RawMessage(`{"current": true}`)))

	doc := s.Document()
	require.Len(t, doc.Experience, 1)
	exp := doc.Experience[0]
	assert.True(t, exp.Current)
	// Unlisted fields are untouched, including the stored end date.
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "06/2021", exp.EndDate)
	assert.Equal(t, id, exp.ID)
}

func TestUpdateRecord_CannotChangeID(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.AppendRecord(types.SectionSkills, json.RawMessage(`{"name": "Go"}`))
	require.NoError(t, err)

	require.NoError(t, s.UpdateRecord(types.SectionSkills, id, json.RawMessage(`{"id": "hijack", "name": "Rust"}`)))

	doc := s.Document()
	assert.Equal(t, id, doc.Skills[0].ID)
	assert.Equal(t, "Rust", doc.Skills[0].Name)
}

func TestUpdateRecord_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AppendRecord(types.SectionProjects, json.RawMessage(`{"name": "resumify"}`))
	require.NoError(t, err)
	before := s.Document()

	require.NoError(t, s.UpdateRecord(types.SectionProjects, "missing", json.RawMessage(`{"name": "changed"}`)))
	assert.Equal(t, before, s.Document())
}

func TestRemoveRecord_PreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)

	var ids []string
	for _, name := range []string{"a", "b", "c", "d"} {
		id, err := s.AppendRecord(types.SectionSkills, json.RawMessage(`{"name": "`+name+`"}`))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, s.RemoveRecord(types.SectionSkills, ids[1]))

	doc := s.Document()
	require.Len(t, doc.Skills, 3)
	assert.Equal(t, "a", doc.Skills[0].Name)
	assert.Equal(t, "c", doc.Skills[1].Name)
	assert.Equal(t, "d", doc.Skills[2].Name)
}

func TestRemoveRecord_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AppendRecord(types.SectionLanguages, json.RawMessage(`{"name": "English"}`))
	require.NoError(t, err)
	before := s.Document()

	require.NoError(t, s.RemoveRecord(types.SectionLanguages, "missing"))
	assert.Equal(t, before, s.Document())
}

func TestReset_RestoresDefaultsAndClearsStorage(t *testing.T) {
	s, storage := newTestStore(t)

	s.ReplacePersonal(types.Personal{FullName: "Someone"})
	_, err := s.AppendRecord(types.SectionCertifications, json.RawMessage(`{"name": "AWS SAA"}`))
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, types.DefaultDocument(), s.Document())
	_, ok, loadErr := storage.Load()
	require.NoError(t, loadErr)
	assert.False(t, ok, "storage should no longer contain the prior data")
}

func TestReplaceDocument_AssignsMissingIDs(t *testing.T) {
	s, _ := newTestStore(t)

	doc := types.DefaultDocument()
	doc.Skills = append(doc.Skills, types.Skill{Name: "Go"}, types.Skill{ID: "keep", Name: "SQL"})
	s.ReplaceDocument(doc)

	got := s.Document()
	require.Len(t, got.Skills, 2)
	assert.NotEmpty(t, got.Skills[0].ID)
	assert.Equal(t, "keep", got.Skills[1].ID)
}

func TestStore_EveryMutationPersists(t *testing.T) {
	s, storage := newTestStore(t)

	id, err := s.AppendRecord(types.SectionSkills, json.RawMessage(`{"name": "Go"}`))
	require.NoError(t, err)

	raw, ok, err := storage.Load()
	require.NoError(t, err)
	require.True(t, ok)

	parsed, err := types.ParseDocument(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Skills, 1)
	assert.Equal(t, id, parsed.Skills[0].ID)
}
