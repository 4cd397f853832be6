package providers

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// LMS is one round trip to the learning platform per call. Results are the
// unwrapped envelope payload, left opaque for the caller to interpret.
type LMS interface {
	Execute(ctx context.Context, req Request) (json.RawMessage, error)
	Upload(ctx context.Context, req UploadRequest) (json.RawMessage, error)
}

type Request struct {
	Method   string
	Endpoint string
	// Body is sent as JSON when non-nil.
	Body  any
	Query url.Values
}

// Target joins baseURL, the endpoint and the encoded query.
func (r Request) Target(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.Endpoint
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

type UploadRequest struct {
	Content  []byte
	Filename string
	// ParentFolderID <= 0 uploads to the root folder.
	ParentFolderID int64
}
