package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// every top-level config section must be known to the schema
	props := topLevelProperties(&schema)
	for key := range configMap {
		if _, ok := props[key]; !ok {
			return fmt.Errorf("config section %q is not described by schema", key)
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// topLevelProperties returns property names of the root definition
func topLevelProperties(schema *jsonschema.Schema) map[string]struct{} {
	res := map[string]struct{}{}
	root := schema
	if schema.Ref != "" && schema.Definitions != nil {
		name := strings.TrimPrefix(schema.Ref, "#/$defs/")
		if def, ok := schema.Definitions[name]; ok {
			root = def
		}
	}
	if root.Properties == nil {
		return res
	}
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		res[pair.Key] = struct{}{}
	}
	return res
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
