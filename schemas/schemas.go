// Package schemas validates imported resume documents against the embedded
// JSON Schema before they reach the store. Unknown top-level keys are allowed
// so documents written by newer versions still import.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema string

// ValidationError carries the individual schema violations for one document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed schema validation: %s", strings.Join(e.Violations, "; "))
}

// ValidateDocument checks raw JSON against the resume document schema.
// It returns a *ValidationError listing every violation, or a plain error
// when the input is not valid JSON at all.
func ValidateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeDocumentSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ValidationError{Violations: violations}
}
