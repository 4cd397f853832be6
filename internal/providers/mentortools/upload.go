package mentortools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"mentortools-mcp/internal/providers"
)

const UploadEndpoint = "/mediastorage/v1/files/upload"

// Upload posts the file as multipart form data. parent_folder_id is only
// sent for a positive folder id.
func (c *Client) Upload(ctx context.Context, req providers.UploadRequest) (json.RawMessage, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if req.Filename == "" {
		return nil, errors.New("upload: filename is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("upload: create form file: %w", err)
	}
	if _, err := part.Write(req.Content); err != nil {
		return nil, fmt.Errorf("upload: write content: %w", err)
	}
	if req.ParentFolderID > 0 {
		if err := w.WriteField("parent_folder_id", strconv.FormatInt(req.ParentFolderID, 10)); err != nil {
			return nil, fmt.Errorf("upload: write parent_folder_id: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("upload: close form: %w", err)
	}

	payload := buf.Bytes()
	contentType := w.FormDataContentType()
	target := c.baseURL + UploadEndpoint

	return c.roundTrip(ctx, http.MethodPost, UploadEndpoint, fallbackUpload, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", contentType)
		return r, nil
	})
}
