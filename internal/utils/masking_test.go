package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("john@example.com"))
	assert.Equal(t, "a***@b.co", MaskEmail("anna@b.co"))

	// No '@' means nothing to split on; returned unchanged.
	assert.Equal(t, "noAtSign", MaskEmail("noAtSign"))
	assert.Equal(t, "", MaskEmail(""))

	// Leading '@' has an empty local part, also returned unchanged.
	assert.Equal(t, "@example.com", MaskEmail("@example.com"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***-***-4567", MaskPhone("555-123-4567"))
	assert.Equal(t, "***-***-4567", MaskPhone("+1 (555) 123-4567"))
	assert.Equal(t, "***-***-1234", MaskPhone("1234"))

	// Too few digits to keep anything.
	assert.Equal(t, "***-***-****", MaskPhone("12"))
	assert.Equal(t, "***-***-****", MaskPhone(""))
	assert.Equal(t, "***-***-****", MaskPhone("abc"))
}
