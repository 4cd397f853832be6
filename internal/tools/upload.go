package tools

import (
	"context"
	"fmt"

	"mentortools-mcp/internal/contracts"
	"mentortools-mcp/internal/filesource"
	"mentortools-mcp/internal/providers"
)

func (r *Registry) uploadTool() ToolSpec {
	return bind(ToolSpec{
		Name:  Prefix + "upload_file",
		Title: "Upload File",
		Description: `Upload a file to media storage.

Give exactly one source:
  - path (string): 'sftp://<remote path>' or a path inside the server's upload directory
  - content_base64 (string): File content, base64 encoded (requires filename)

Args:
  - filename (string, optional): Stored name with extension (defaults to the base name of path)
  - parent_folder_id (number, optional): Target folder (0 or omitted for root)

Returns: The stored file's ID and details`,
		OpenWorld: true,
	}, contracts.UploadFile, func(ctx context.Context, in contracts.UploadFileInput) (string, error) {
		f, err := r.files.Load(ctx, filesource.Source{
			Path:          in.Path,
			ContentBase64: in.ContentBase64,
			Filename:      in.Filename,
		})
		if err != nil {
			return "", err
		}

		raw, err := r.lms.Upload(ctx, providers.UploadRequest{
			Content:        f.Content,
			Filename:       f.Name,
			ParentFolderID: in.ParentFolderID,
		})
		if err != nil {
			return "", err
		}

		details, err := renderJSON(raw)
		if err != nil {
			return "", err
		}
		if id, ok := pick(raw, "id")["id"]; ok {
			return fmt.Sprintf("File uploaded successfully. ID: %v\n\n%s", id, details), nil
		}
		return "File uploaded successfully.\n\n" + details, nil
	})
}
