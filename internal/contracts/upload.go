package contracts

import "mentortools-mcp/internal/schema"

// UploadFile reads its bytes from exactly one of path or content_base64;
// that pairing is checked by the handler since the contract language has
// no cross-field rules.
var UploadFile = schema.New("upload_file",
	schema.Str("path", "Source path: 'sftp://<remote path>' or a path relative to the configured upload directory"),
	schema.Str("content_base64", "File content, base64 encoded"),
	schema.Str("filename", "Filename with extension (defaults to the base name of path)").Length(1, MaxTitleLength),
	schema.Int("parent_folder_id", "Target folder ID (0 or omitted for root)").AtLeast(0),
)

type UploadFileInput struct {
	Path           string `json:"path,omitempty"`
	ContentBase64  string `json:"content_base64,omitempty"`
	Filename       string `json:"filename,omitempty"`
	ParentFolderID int64  `json:"parent_folder_id,omitempty"`
}
