package util

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadFactsFromJSON(t *testing.T) {
	// Arrange
	tempFile := createTempFile(t, `["fact one", "fact two"]`)

	// Act
	facts, err := ReadFactsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("Expected 2 facts, got %d", len(facts))
	}
	if facts[1] != "fact two" {
		t.Errorf("Expected 'fact two', got %s", facts[1])
	}
}

func TestReadFactsFromJSON_Malformed(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)

	if _, err := ReadFactsFromJSON(tempFile); err == nil {
		t.Fatal("Expected an error, got nil")
	}
}

func TestReadFactsFromJSON_Missing(t *testing.T) {
	if _, err := ReadFactsFromJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Expected an error, got nil")
	}
}
