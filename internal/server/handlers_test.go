package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumify/resumify/internal/store"
	"github.com/resumify/resumify/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Port:           8080,
		Storage:        store.NewMemoryStorage(),
		TemplatePath:   filepath.Join("..", "..", "templates", "base.docx"),
		SuggestLatency: 5 * time.Millisecond,
	})
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func getDocument(t *testing.T, s *Server) types.ResumeDocument {
	t.Helper()
	rec := doJSON(t, s, http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc types.ResumeDocument
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	return doc
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestGetResume_Defaults(t *testing.T) {
	s := newTestServer(t)
	doc := getDocument(t, s)
	assert.Equal(t, types.DefaultThemeColor, doc.Theme.Color)
	assert.Empty(t, doc.Experience)
}

func TestUpdatePersonal(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPut, "/resume/personal", types.Personal{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	doc := getDocument(t, s)
	assert.Equal(t, "Ada Lovelace", doc.Personal.FullName)
}

func TestUpdatePersonal_BadEmail(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPut, "/resume/personal", types.Personal{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTheme(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/resume/theme", types.Theme{Color: "#2563eb", Font: "Georgia"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPut, "/resume/theme/color", `{"color": "#ffe4d1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPut, "/resume/theme/font", `{"font": "Cambria"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := getDocument(t, s)
	assert.Equal(t, "#ffe4d1", doc.Theme.Color)
	assert.Equal(t, "Cambria", doc.Theme.Font)
}

func TestRecordLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/experience", `{"role": "Engineer", "company": "Acme"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"]
	require.NotEmpty(t, id)

	rec = doJSON(t, s, http.MethodPatch, "/resume/experience/"+id, `{"company": "Initech"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := getDocument(t, s)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Initech", doc.Experience[0].Company)
	assert.Equal(t, "Engineer", doc.Experience[0].Role)

	rec = doJSON(t, s, http.MethodDelete, "/resume/experience/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, getDocument(t, s).Experience)
}

func TestAppendRecord_UnknownSection(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/resume/hobbies", `{"name": "chess"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppendRecord_BadBody(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/resume/experience", `{"current": "yes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRecord_UnknownIDIsNoOp(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPatch, "/resume/experience/nope", `{"company": "Acme"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, getDocument(t, s).Experience)
}

func TestReset_RequiresConfirmation(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPut, "/resume/personal", types.Personal{FullName: "Ada"})

	rec := doJSON(t, s, http.MethodPost, "/resume/reset", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ada", getDocument(t, s).Personal.FullName)

	rec = doJSON(t, s, http.MethodPost, "/resume/reset", `{"confirm": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, getDocument(t, s).Personal.FullName)
}

func TestImport(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/import",
		`{"personal": {"fullName": "Ada"}, "skills": [{"name": "Go"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := getDocument(t, s)
	assert.Equal(t, "Ada", doc.Personal.FullName)
	require.Len(t, doc.Skills, 1)
	assert.NotEmpty(t, doc.Skills[0].ID, "imported records get ids assigned")
}

func TestImport_SchemaViolation(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/resume/import", `{"skills": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggest(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/experience", `{"role": "Software Engineer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"]

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/resume/experience/%s/suggest", id), `{}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["requestId"])

	s.suggests.Wait()

	doc := getDocument(t, s)
	require.Len(t, doc.Experience, 1)
	assert.Len(t, strings.Split(doc.Experience[0].Description, "\n"), 3)
}

func TestSuggest_UnknownRecord(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/resume/experience/nope/suggest", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuggest_NoRole(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/experience", `{"company": "Acme"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"]

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/resume/experience/%s/suggest", id), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreview(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPut, "/resume/personal", types.Personal{FullName: "Ada Lovelace"})

	rec := doJSON(t, s, http.MethodGet, "/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
}

func TestExportDOCX(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPut, "/resume/personal", types.Personal{FullName: "Ada Lovelace"})

	rec := doJSON(t, s, http.MethodGet, "/export/docx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Ada_Lovelace_Resume_Resumify.docx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/resume", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
