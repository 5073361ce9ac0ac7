package types

// DataType is the JSON-schema-ish type vocabulary used in catalog output.
// The schema is opaque to the sync engine itself; it exists for downstream
// validators and sinks.
type DataType string

const (
	String  DataType = "string"
	Number  DataType = "number"
	Integer DataType = "integer"
	Boolean DataType = "boolean"
	Object  DataType = "object"
	Array   DataType = "array"
	Null    DataType = "null"
)

type Property struct {
	Type []DataType `json:"type"`
}

type Schema struct {
	Type       string               `json:"type"`
	Properties map[string]*Property `json:"properties"`
}

// NewSchema builds an object schema where every field is nullable, which is
// how the upstream API behaves in practice.
func NewSchema(fields map[string]DataType) *Schema {
	properties := make(map[string]*Property, len(fields))
	for field, typ := range fields {
		properties[field] = &Property{Type: []DataType{typ, Null}}
	}
	return &Schema{
		Type:       "object",
		Properties: properties,
	}
}
