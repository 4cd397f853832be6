// Package tools provides a metadata-driven registry for the Mentortools MCP
// tools. Each ToolSpec pairs a closed input contract with a handler that makes
// exactly one API call and renders the outcome as text.
package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mentortools-mcp/internal/filesource"
	"mentortools-mcp/internal/metrics"
	"mentortools-mcp/internal/providers"
	"mentortools-mcp/internal/providers/mentortools"
	"mentortools-mcp/internal/schema"
)

const Prefix = "mentortools_"

// Handler receives the raw tool arguments and returns the text to show.
type Handler func(ctx context.Context, raw json.RawMessage) (string, error)

// ToolSpec defines a tool's metadata for declarative registration.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "mentortools_list_courses")
	Name        string
	Title       string
	Description string
	Contract    *schema.Contract

	// ReadOnly indicates the tool doesn't modify platform state
	ReadOnly bool
	// Destructive indicates the tool can delete data
	Destructive bool
	// Idempotent indicates repeated calls have the same effect
	Idempotent bool
	// OpenWorld indicates the tool talks to the remote API
	OpenWorld bool

	Handle Handler
}

// Tool is the MCP definition advertised to hosts.
func (s ToolSpec) Tool() *mcp.Tool {
	return &mcp.Tool{
		Name:        s.Name,
		Title:       s.Title,
		Description: s.Description,
		InputSchema: s.Contract.JSONSchema(),
		Annotations: &mcp.ToolAnnotations{
			Title:           s.Title,
			ReadOnlyHint:    s.ReadOnly,
			DestructiveHint: ptr(s.Destructive),
			IdempotentHint:  s.Idempotent,
			OpenWorldHint:   ptr(s.OpenWorld),
		},
	}
}

// bind builds a spec whose handler validates against c and decodes into T
// before calling fn.
func bind[T any](spec ToolSpec, c *schema.Contract, fn func(context.Context, T) (string, error)) ToolSpec {
	spec.Contract = c
	spec.Handle = func(ctx context.Context, raw json.RawMessage) (string, error) {
		in, err := schema.Decode[T](c, raw)
		if err != nil {
			return "", err
		}
		return fn(ctx, in)
	}
	return spec
}

type Options struct {
	// Files resolves upload_file sources. Nil accepts inline content only.
	Files   *filesource.Resolver
	Metrics metrics.Recorder
	Logger  logr.Logger
}

type Registry struct {
	lms     providers.LMS
	files   *filesource.Resolver
	metrics metrics.Recorder
	log     logr.Logger
	specs   []ToolSpec
}

func New(lms providers.LMS, opts Options) *Registry {
	r := &Registry{
		lms:     lms,
		files:   opts.Files,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
	if r.files == nil {
		r.files = &filesource.Resolver{}
	}
	if r.metrics == nil {
		r.metrics = metrics.NoOp{}
	}

	groups := [][]ToolSpec{
		r.courseTools(),
		r.moduleTools(),
		r.lessonTools(),
		r.submoduleTools(),
		r.fileTools(),
		r.folderTools(),
		r.orderTools(),
	}
	for _, g := range groups {
		r.specs = append(r.specs, g...)
	}
	return r
}

// Specs returns the tool specs in registration order.
func (r *Registry) Specs() []ToolSpec {
	return append([]ToolSpec(nil), r.specs...)
}

// Register adds every tool to s.
func (r *Registry) Register(s *mcp.Server) {
	for _, spec := range r.specs {
		s.AddTool(spec.Tool(), r.handler(spec))
	}
}

// handler is the invocation boundary: every failure, including a panic,
// becomes an IsError text result.
func (r *Registry) handler(spec ToolSpec) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		start := time.Now()
		success := false
		defer func() {
			if p := recover(); p != nil {
				msg := mentortools.Unexpected(p)
				r.log.Info("tool call panicked", "tool", spec.Name, "error", msg)
				res, err = errorResult(msg), nil
			}
			r.metrics.RecordToolCall(spec.Name, time.Since(start), success)
		}()

		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}

		text, herr := spec.Handle(ctx, raw)
		if herr != nil {
			msg := mentortools.ClassifyError(herr)
			r.log.Info("tool call failed", "tool", spec.Name, "error", msg)
			return errorResult(msg), nil
		}

		success = true
		return textResult(truncate(text)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

func errorResult(text string) *mcp.CallToolResult {
	res := textResult(text)
	res.IsError = true
	return res
}

func ptr[T any](v T) *T {
	return &v
}
