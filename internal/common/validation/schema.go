// internal/common/validation/schema.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateDocument validates an already-unmarshalled document against a JSON
// schema string. It returns one field-path-qualified message per violation;
// an empty slice means the document is valid.
func ValidateDocument(schemaJSON string, document interface{}) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = fmt.Sprintf("%s: %s", desc.Field(), desc.Description())
	}
	return errs, nil
}
