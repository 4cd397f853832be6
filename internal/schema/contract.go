// Package schema defines closed input contracts: ordered sets of typed,
// constrained, optionally defaulted fields. Contracts compose as plain data
// (extend, merge, pick, partial), render to JSON Schema for tool discovery,
// and validate raw JSON arguments before anything reaches the network.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// Contract is a named, closed set of fields. A Contract is immutable once
// built; composition returns new contracts.
type Contract struct {
	name   string
	fields []Field

	once     sync.Once
	compiled *gojsonschema.Schema
	err      error
}

func New(name string, fields ...Field) *Contract {
	return &Contract{name: name, fields: append([]Field(nil), fields...)}
}

func (c *Contract) Name() string { return c.name }

// Fields returns a copy of the contract's fields in declaration order.
func (c *Contract) Fields() []Field {
	return append([]Field(nil), c.fields...)
}

func (c *Contract) Field(name string) (Field, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Named returns a copy of the contract under another name.
func (c *Contract) Named(name string) *Contract {
	return New(name, c.fields...)
}

// Extend returns base ∪ overrides. An override replaces the base field of the
// same name in place; new fields are appended.
func (c *Contract) Extend(overrides ...Field) *Contract {
	out := append([]Field(nil), c.fields...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Name == o.Name {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return New(c.name, out...)
}

// Merge extends c with every field of other.
func (c *Contract) Merge(other *Contract) *Contract {
	return c.Extend(other.fields...)
}

// Pick keeps only the named fields, in the base contract's order. Picking a
// field the contract does not declare is a programming error.
func (c *Contract) Pick(names ...string) *Contract {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := c.Field(n); !ok {
			panic(fmt.Sprintf("schema: contract %q has no field %q", c.name, n))
		}
		want[n] = true
	}
	var out []Field
	for _, f := range c.fields {
		if want[f.Name] {
			out = append(out, f)
		}
	}
	return New(c.name, out...)
}

// Partial makes every top-level field optional without defaults: an absent
// field means "leave unchanged", never "reset".
func (c *Contract) Partial() *Contract {
	out := make([]Field, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Optional()
	}
	return New(c.name, out...)
}

// JSONSchema renders the contract as a closed object schema.
func (c *Contract) JSONSchema() *jsonschema.Schema {
	return objectSchema(c.fields)
}

func (c *Contract) compile() (*gojsonschema.Schema, error) {
	c.once.Do(func() {
		doc, err := json.Marshal(c.JSONSchema())
		if err != nil {
			c.err = fmt.Errorf("schema: render %s: %w", c.name, err)
			return
		}
		sl := gojsonschema.NewSchemaLoader()
		sl.Draft = gojsonschema.Draft7
		sl.AutoDetect = false
		c.compiled, c.err = sl.Compile(gojsonschema.NewBytesLoader(doc))
		if c.err != nil {
			c.err = fmt.Errorf("schema: compile %s: %w", c.name, c.err)
		}
	})
	return c.compiled, c.err
}
