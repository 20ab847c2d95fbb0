package util

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFactsFromJSON loads a list of fact strings from JSON on disk.
func ReadFactsFromJSON(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var facts []string
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facts: %w", err)
	}
	return facts, nil
}
