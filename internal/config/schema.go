package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the component document schema.
const SchemaID = "https://github.com/alexisbeaulieu97/atomic/schemas/components-v1.json"

// GenerateJSONSchema produces a JSON Schema document describing component
// documents, reflected from the Document type.
func GenerateJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Document{})
	s.ID = SchemaID
	s.Title = "atomic component document v1"
	s.Description = "Custom components merged into the atomic catalog"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
