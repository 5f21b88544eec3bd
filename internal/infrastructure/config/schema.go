package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects Config into a JSON schema document.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tabring/config.schema.json"
	schema.Title = "tabring configuration"
	schema.Description = "Configuration schema for tabring, a bounded tab registry with session snapshots"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the schema next to the config file in dir and
// returns its path.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
