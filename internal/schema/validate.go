package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidInput is matched by every *ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// FieldError is one failed constraint. Field is a dotted path; "(root)" means
// the object itself (missing or unknown properties).
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

type ValidationError struct {
	Contract string
	Errors   []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.String())
	}
	return "Invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate parses raw as a JSON object, fills in defaults for absent fields
// and checks the result against the contract. Empty or null input is treated
// as {}. The returned map is the fully defaulted argument set.
func (c *Contract) Validate(raw json.RawMessage) (map[string]any, error) {
	compiled, err := c.compile()
	if err != nil {
		return nil, err
	}

	args := map[string]any{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&args); err != nil {
			return nil, &ValidationError{
				Contract: c.name,
				Errors:   []FieldError{{Field: "(root)", Message: "arguments must be a JSON object"}},
			}
		}
	}

	applyDefaults(c.fields, args)

	result, err := compiled.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil, fmt.Errorf("schema: validate %s: %w", c.name, err)
	}
	if !result.Valid() {
		verr := &ValidationError{Contract: c.name}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
		}
		return nil, verr
	}
	normalizeIntegers(c.fields, args)
	return args, nil
}

// Decode validates raw against c and decodes the defaulted arguments into T.
func Decode[T any](c *Contract, raw json.RawMessage) (T, error) {
	var out T
	args, err := c.Validate(raw)
	if err != nil {
		return out, err
	}
	b, err := json.Marshal(args)
	if err != nil {
		return out, fmt.Errorf("schema: encode %s: %w", c.name, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return out, &ValidationError{
				Contract: c.name,
				Errors:   []FieldError{{Field: typeErr.Field, Message: "Invalid type. Expected: " + typeErr.Type.String()}},
			}
		}
		return out, fmt.Errorf("schema: decode %s: %w", c.name, err)
	}
	return out, nil
}

func applyDefaults(fields []Field, obj map[string]any) {
	for _, f := range fields {
		v, present := obj[f.Name]
		if !present {
			if f.DefaultValue != nil {
				obj[f.Name] = f.DefaultValue
			}
			continue
		}
		switch f.Kind {
		case Object:
			if m, ok := v.(map[string]any); ok {
				applyDefaults(f.Fields, m)
			}
		case Array:
			if f.Items == nil || f.Items.Kind != Object {
				continue
			}
			items, ok := v.([]any)
			if !ok {
				continue
			}
			for _, it := range items {
				if m, ok := it.(map[string]any); ok {
					applyDefaults(f.Items.Fields, m)
				}
			}
		}
	}
}

// normalizeIntegers rewrites integral values such as 5.0 or 5e0, which pass
// the integer check, into a form that decodes into Go integers.
func normalizeIntegers(fields []Field, obj map[string]any) {
	for _, f := range fields {
		v, ok := obj[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case Integer:
			obj[f.Name] = integral(v)
		case Object:
			if m, ok := v.(map[string]any); ok {
				normalizeIntegers(f.Fields, m)
			}
		case Array:
			items, ok := v.([]any)
			if !ok || f.Items == nil {
				continue
			}
			for i, it := range items {
				switch f.Items.Kind {
				case Integer:
					items[i] = integral(it)
				case Object:
					if m, ok := it.(map[string]any); ok {
						normalizeIntegers(f.Items.Fields, m)
					}
				}
			}
		}
	}
}

func integral(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if _, err := n.Int64(); err == nil {
		return v
	}
	fl, err := n.Float64()
	if err != nil || fl != math.Trunc(fl) || fl < math.MinInt64 || fl >= math.MaxInt64 {
		return v
	}
	return json.Number(strconv.FormatInt(int64(fl), 10))
}
