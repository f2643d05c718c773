package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// Source names where an input came from.
type Source string

const (
	// SourceFile is a local file or stdin
	SourceFile Source = "file"
	// SourceURL is a fetched job posting page
	SourceURL Source = "url"
)

// Metadata describes an ingested job description.
type Metadata struct {
	Source    Source `json:"source"`
	Path      string `json:"path,omitempty"`
	URL       string `json:"url,omitempty"`
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	Rendered  bool   `json:"rendered,omitempty"` // Text came from a headless browser render
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Chars     int    `json:"chars"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source Source) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     utf8.RuneCountInString(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
