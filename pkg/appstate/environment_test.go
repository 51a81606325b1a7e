package appstate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEnvironment(t *testing.T) {
	env := NewMemoryEnvironment()

	_, ok := env.GetItem("missing")
	assert.False(t, ok)

	env.SetItem("key", "value")
	got, ok := env.GetItem("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	env.RemoveItem("key")
	_, ok = env.GetItem("key")
	assert.False(t, ok)

	env.SetAttribute("dark", "true")
	attr, ok := env.Attribute("dark")
	require.True(t, ok)
	assert.Equal(t, "true", attr)

	env.RemoveAttribute("dark")
	_, ok = env.Attribute("dark")
	assert.False(t, ok)
}

func TestFileEnvironmentSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")

	first := NewFileEnvironment(path)
	first.SetItem("token", "abc123")
	first.SetItem("doomed", "x")
	first.RemoveItem("doomed")

	second := NewFileEnvironment(path)
	got, ok := second.GetItem("token")
	require.True(t, ok)
	assert.Equal(t, "abc123", got)
	_, ok = second.GetItem("doomed")
	assert.False(t, ok)
}

func TestFileEnvironmentAttributesAreEphemeral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")

	first := NewFileEnvironment(path)
	first.SetItem("token", "abc123")
	first.SetAttribute("dark", "true")

	second := NewFileEnvironment(path)
	_, ok := second.GetItem("token")
	assert.True(t, ok)
	// Display attributes model transient document state, not storage.
}

func TestFileEnvironmentWithMissingFile(t *testing.T) {
	env := NewFileEnvironment(filepath.Join(t.TempDir(), "never-written.gob"))
	_, ok := env.GetItem("anything")
	assert.False(t, ok)
}
