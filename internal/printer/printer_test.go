package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumify/resumify/internal/types"
)

// PDF itself needs a Chrome binary, so it is exercised by hand and in CI
// images that ship one. The name derivation is pure and tested here.

func TestFileName(t *testing.T) {
	doc := types.DefaultDocument()
	assert.Equal(t, "Resume_Resumify.pdf", FileName(doc))

	doc.Personal.FullName = "Ada Lovelace"
	assert.Equal(t, "Ada_Lovelace_Resume_Resumify.pdf", FileName(doc))

	doc.Personal.FullName = "   "
	assert.Equal(t, "Resume_Resumify.pdf", FileName(doc))
}

func TestPrintErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &PrintError{Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
