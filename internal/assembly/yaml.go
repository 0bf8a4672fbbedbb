package assembly

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML serializes a document description to the renderer's input
// format. Struct field order is preserved and unicode content is emitted
// as-is.
func MarshalYAML(desc DocumentDescription) ([]byte, error) {
	out, err := yaml.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document description: %w", err)
	}
	return out, nil
}
