package services

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactsService_RandomFact_Deterministic(t *testing.T) {
	facts := []string{"a", "b", "c", "d"}

	first := NewFactsService(facts, rand.New(rand.NewSource(42)))
	second := NewFactsService(facts, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		got := first.RandomFact()
		assert.Contains(t, facts, got)
		assert.Equal(t, got, second.RandomFact())
	}
}

func TestFactsService_FallsBackToDefaults(t *testing.T) {
	fs := NewFactsService(nil, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		assert.Contains(t, defaultFacts, fs.RandomFact())
	}
}

func TestNewFactsServiceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.json")
	require.NoError(t, os.WriteFile(path, []byte(`["only fact"]`), 0o644))

	fs := NewFactsServiceFromFile(path, rand.New(rand.NewSource(1)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, "only fact", fs.RandomFact())
	}
}

func TestNewFactsServiceFromFile_Missing(t *testing.T) {
	fs := NewFactsServiceFromFile(filepath.Join(t.TempDir(), "missing.json"), rand.New(rand.NewSource(1)))

	assert.Contains(t, defaultFacts, fs.RandomFact())
}
