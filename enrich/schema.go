package enrich

import (
	"encoding/json"
	"sort"

	"github.com/invopop/jsonschema"
)

// metadataReply mirrors the JSON object the extraction prompt demands.
type metadataReply struct {
	LineCount int      `json:"line_count"`
	Language  string   `json:"language" jsonschema:"enum=English,enum=Hinglish"`
	Tags      []string `json:"tags"`
}

var metadataSchema = generateSchema[metadataReply]()

// generateSchema reflects T into a schema acceptable to strict
// structured-output mode: no $refs, no additional properties, and every
// property required.
func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	requireAllProperties(m)
	return m
}

func requireAllProperties(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok && len(props) > 0 {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			sort.Strings(required)
			schema["required"] = required
		}
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				requireAllProperties(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		requireAllProperties(items)
	}
}
