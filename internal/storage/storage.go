package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

// ExpandPath expands a leading ~/ to the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// MarshalCatalog encodes the catalog in its export format
func MarshalCatalog(catalog program.Catalog) ([]byte, error) {
	if catalog == nil {
		catalog = program.Catalog{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(catalog); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveCatalog writes the catalog export to path, creating parent directories
func SaveCatalog(path string, catalog program.Catalog) error {
	data, err := MarshalCatalog(catalog)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// LoadCatalog reads a catalog export from path
func LoadCatalog(path string) (program.Catalog, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var catalog program.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	for _, s := range catalog {
		if s.SubEvents == nil {
			s.SubEvents = []program.SubEvent{}
		}
	}

	return catalog, nil
}

// WriteFile writes data to path, creating parent directories
func WriteFile(path string, data []byte) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
