package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShort tests the Short function.
func TestShort(t *testing.T) {
	t.Parallel()

	result := Short()
	assert.Equal(t, Version, result)
}

// TestFull tests the Full function.
func TestFull(t *testing.T) {
	t.Parallel()

	result := Full()
	expected := "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
	assert.Equal(t, expected, result)
}

// TestVersionVariables tests that version variables are properly initialized.
func TestVersionVariables(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, BuildTime)
}
