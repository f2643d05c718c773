// Package ingestion reads the resume and job description inputs from files,
// stdin or job posting URLs.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	multiSpace     = regexp.MustCompile(`\s+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ReadText returns the contents of path exactly as stored, or of stdin when
// path is "-". Text is not cleaned: it is sent to the backend as entered.
func ReadText(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		if stdin == nil {
			return "", fmt.Errorf("no stdin available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessiveBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown headings lose their indentation
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// IngestFromFile reads a job description file, or stdin when path is "-",
// cleans it, and returns the cleaned text with metadata.
func IngestFromFile(path string, stdin io.Reader) (string, *Metadata, error) {
	content, err := ReadText(path, stdin)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(content)
	metadata := NewMetadata(cleanedText, SourceFile)
	if path != StdinPath {
		metadata.Path = path
	}

	return cleanedText, metadata, nil
}
