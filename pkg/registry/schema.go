// pkg/registry/schema.go
package registry

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// registrySchema is the JSON schema every registry file must satisfy before
// it is parsed into capabilities.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "agents"],
  "properties": {
    "version": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "agents": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["agent", "reliability"],
        "additionalProperties": false,
        "properties": {
          "agent": {
            "type": "string",
            "enum": ["linkedin", "indeed", "glassdoor", "google", "ziprecruiter", "seek", "naukri", "bayt", "bdjobs"]
          },
          "reliability": {"type": "number", "minimum": 0, "maximum": 1},
          "regions": {"type": "array", "items": {"type": "string"}},
          "requiresScopedGeography": {"type": "boolean"},
          "callTimeoutMs": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

// ValidateJSON checks raw registry bytes against the schema.
func ValidateJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(registrySchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("registry schema validation: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("registry schema validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
