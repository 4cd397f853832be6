package schema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Kind is the semantic type of a field.
type Kind int

const (
	Integer Kind = iota
	Number
	String
	Boolean
	Enum
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Enum:
		return "enum"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Field describes one named, typed, constrained input value. Fields are
// values: every builder method returns a modified copy, so a field shared
// between contracts is never mutated through another contract.
type Field struct {
	Name         string
	Kind         Kind
	Description  string
	Required     bool
	DefaultValue any

	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	MinLength        *int
	MaxLength        *int
	MinItems         *int
	Enum             []string
	Format           string

	// Fields are the members of an Object field.
	Fields []Field
	// Items is the element of an Array field.
	Items *Field
}

func Int(name, description string) Field {
	return Field{Name: name, Kind: Integer, Description: description}
}

func Float(name, description string) Field {
	return Field{Name: name, Kind: Number, Description: description}
}

func Str(name, description string) Field {
	return Field{Name: name, Kind: String, Description: description}
}

func Bool(name, description string) Field {
	return Field{Name: name, Kind: Boolean, Description: description}
}

// OneOf is a closed set of string values.
func OneOf(name, description string, values ...string) Field {
	return Field{Name: name, Kind: Enum, Description: description, Enum: append([]string(nil), values...)}
}

// Obj is a nested closed object.
func Obj(name, description string, fields ...Field) Field {
	return Field{Name: name, Kind: Object, Description: description, Fields: append([]Field(nil), fields...)}
}

// List is an array whose elements all match item. The item's name is ignored.
func List(name, description string, item Field) Field {
	return Field{Name: name, Kind: Array, Description: description, Items: &item}
}

// Require marks the field as mandatory. A required field carries no default.
func (f Field) Require() Field {
	f.Required = true
	f.DefaultValue = nil
	return f
}

// Optional clears both the required flag and any default.
func (f Field) Optional() Field {
	f.Required = false
	f.DefaultValue = nil
	return f
}

// Default makes the field optional and fills v in when the field is absent.
func (f Field) Default(v any) Field {
	f.Required = false
	f.DefaultValue = v
	return f
}

func (f Field) Describe(description string) Field {
	f.Description = description
	return f
}

// Range sets inclusive numeric bounds.
func (f Field) Range(min, max float64) Field {
	f.Minimum = &min
	f.Maximum = &max
	return f
}

// AtLeast sets an inclusive lower bound.
func (f Field) AtLeast(min float64) Field {
	f.Minimum = &min
	return f
}

// Positive rejects zero and negatives: integers start at 1, numbers must be
// strictly greater than 0.
func (f Field) Positive() Field {
	if f.Kind == Integer {
		return f.AtLeast(1)
	}
	zero := 0.0
	f.ExclusiveMinimum = &zero
	return f
}

// Length bounds a string's length in characters.
func (f Field) Length(min, max int) Field {
	f.MinLength = &min
	f.MaxLength = &max
	return f
}

// NonEmpty requires at least one array element.
func (f Field) NonEmpty() Field {
	one := 1
	f.MinItems = &one
	return f
}

func (f Field) Email() Field {
	f.Format = "email"
	return f
}

// JSONSchema renders the field as a JSON Schema fragment. Objects are always
// closed.
func (f Field) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Description:      f.Description,
		Minimum:          f.Minimum,
		Maximum:          f.Maximum,
		ExclusiveMinimum: f.ExclusiveMinimum,
		MinLength:        f.MinLength,
		MaxLength:        f.MaxLength,
		Format:           f.Format,
	}

	switch f.Kind {
	case Integer:
		s.Type = "integer"
	case Number:
		s.Type = "number"
	case String:
		s.Type = "string"
	case Boolean:
		s.Type = "boolean"
	case Enum:
		s.Type = "string"
		for _, v := range f.Enum {
			s.Enum = append(s.Enum, v)
		}
	case Object:
		obj := objectSchema(f.Fields)
		obj.Description = f.Description
		return withDefault(obj, f.DefaultValue)
	case Array:
		s.Type = "array"
		s.MinItems = f.MinItems
		if f.Items != nil {
			s.Items = f.Items.JSONSchema()
		}
	}

	return withDefault(s, f.DefaultValue)
}

func withDefault(s *jsonschema.Schema, v any) *jsonschema.Schema {
	if v == nil {
		return s
	}
	if b, err := json.Marshal(v); err == nil {
		s.Default = b
	}
	return s
}

func objectSchema(fields []Field) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(fields)),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
	for _, f := range fields {
		s.Properties[f.Name] = f.JSONSchema()
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}
