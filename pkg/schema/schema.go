package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema describes the JSON object a tool accepts as its arguments.
type Schema struct {
	Properties any
	Required   []string

	raw json.RawMessage
}

func (s Schema) Ptr() *Schema {
	return &s
}

// Raw returns the whole schema document, for protocol layers that want the
// schema verbatim.
func (s Schema) Raw() json.RawMessage {
	return s.raw
}

// Usage: see https://github.com/invopop/jsonschema?tab=readme-ov-file
func Get[T any]() Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var v T
	sch := reflector.Reflect(v)
	raw, _ := json.Marshal(sch)

	return Schema{
		Properties: sch.Properties,
		Required:   sch.Required,
		raw:        raw,
	}
}
