package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output file names written by WriteOutput.
const (
	CleanedTextFile = "job_description.cleaned.txt"
	MetadataFile    = "job_description.meta.json"
)

// WriteOutput saves the cleaned job description and its metadata under
// outDir, creating the directory if needed.
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if metadata == nil {
		return fmt.Errorf("metadata is required")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, CleanedTextFile), []byte(cleanedText), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, MetadataFile), metaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
