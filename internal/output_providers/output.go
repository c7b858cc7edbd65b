// Package outputproviders writes handler progress events to their destinations.
package outputproviders

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// Result is one handler invocation as the CLI reports it.
type Result struct {
	// Resource is the lower-case resource segment of the type name, e.g. "schemamapping".
	Resource string
	Action   string
	// Event is the encoded progress event.
	Event []byte
	// Rendered is Event after formatting or a jq query.
	Rendered string
}

type OutputProvider interface {
	Write(result Result) error
}

// WriteAll hands result to every provider and stops at the first failure.
func WriteAll(providers []OutputProvider, result Result) error {
	for _, p := range providers {
		if err := p.Write(result); err != nil {
			return err
		}
	}
	return nil
}

// GetFullPath constructs the full file path from filename and output path
func GetFullPath(filename string, outputPath string) string {
	return filepath.Join(outputPath, filename)
}

// GenerateShortUUID generates a random 10-character id
func GenerateShortUUID() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// DefaultFileName is <resource>-<action>-<id>.<ext>.
func DefaultFileName(result Result, ext string) string {
	parts := []string{result.Resource, strings.ToLower(result.Action)}
	if id := GenerateShortUUID(); id != "" {
		parts = append(parts, id)
	}
	return fmt.Sprintf("%s.%s", strings.Join(parts, "-"), ext)
}
