package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"mentortools-mcp/internal/contracts"
	"mentortools-mcp/internal/providers"
)

// CharacterLimit caps the text returned by a single tool call.
const CharacterLimit = 25000

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= CharacterLimit {
		return text
	}
	cut, n := 0, 0
	for i := range text {
		if n == CharacterLimit {
			cut = i
			break
		}
		n++
	}
	return text[:cut] + fmt.Sprintf("\n\n[Response truncated at %d characters. Use limit/offset or filters to narrow the result.]", CharacterLimit)
}

// renderJSON pretty-prints a result with two-space indentation.
func renderJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("render result: %w", err)
	}
	return buf.String(), nil
}

// scalar renders a result for inline use: strings unquoted, everything else
// as compact JSON.
func scalar(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var buf bytes.Buffer
	if json.Compact(&buf, raw) == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(raw))
}

// truthy treats false, null, 0 and "" as a failed mutation.
func truthy(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "false", "null", "0", `""`:
		return false
	}
	return true
}

// pick keeps the named top-level keys of a JSON object result. Numbers stay
// json.Number so ids print as sent.
func pick(raw json.RawMessage, keys ...string) map[string]any {
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

func pageQuery(p contracts.PageInput) url.Values {
	return url.Values{
		"limit":  {strconv.Itoa(p.Limit)},
		"offset": {strconv.Itoa(p.Offset)},
	}
}

func (r *Registry) get(ctx context.Context, endpoint string, q url.Values) (json.RawMessage, error) {
	return r.lms.Execute(ctx, providers.Request{Method: http.MethodGet, Endpoint: endpoint, Query: q})
}

func (r *Registry) getJSON(ctx context.Context, endpoint string, q url.Values) (string, error) {
	raw, err := r.get(ctx, endpoint, q)
	if err != nil {
		return "", err
	}
	return renderJSON(raw)
}

// count renders "<label>: <n>".
func (r *Registry) count(ctx context.Context, endpoint string, q url.Values, label string) (string, error) {
	raw, err := r.get(ctx, endpoint, q)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", label, scalar(raw)), nil
}

func (r *Registry) create(ctx context.Context, endpoint string, body any, entity string) (string, error) {
	raw, err := r.lms.Execute(ctx, providers.Request{Method: http.MethodPost, Endpoint: endpoint, Body: body})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s created successfully. ID: %s", entity, scalar(raw)), nil
}

func (r *Registry) update(ctx context.Context, method, endpoint string, body any, entity string) (string, error) {
	raw, err := r.lms.Execute(ctx, providers.Request{Method: method, Endpoint: endpoint, Body: body})
	if err != nil {
		return "", err
	}
	if truthy(raw) {
		return entity + " updated successfully", nil
	}
	return entity + " update failed", nil
}

func (r *Registry) remove(ctx context.Context, endpoint, entity string) (string, error) {
	raw, err := r.lms.Execute(ctx, providers.Request{Method: http.MethodDelete, Endpoint: endpoint})
	if err != nil {
		return "", err
	}
	if truthy(raw) {
		return entity + " deleted successfully", nil
	}
	return entity + " deletion failed", nil
}
