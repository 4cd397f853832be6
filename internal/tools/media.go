package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"mentortools-mcp/internal/contracts"
)

// mediaQuery adds the optional filters only when set.
func mediaQuery(in contracts.ListMediaInput) url.Values {
	q := pageQuery(in.PageInput)
	if in.ParentFolderID > 0 {
		q.Set("parent_folder_id", strconv.FormatInt(in.ParentFolderID, 10))
	}
	if in.Filename != "" {
		q.Set("filename", in.Filename)
	}
	return q
}

func parentQuery(parent int64) url.Values {
	if parent <= 0 {
		return nil
	}
	return url.Values{"parent_folder_id": {strconv.FormatInt(parent, 10)}}
}

func (r *Registry) fileTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_files",
			Title: "List Files",
			Description: `List files in a media storage folder (the root folder when parent_folder_id is omitted).

Args:
  - parent_folder_id (number, optional): Folder ID
  - limit (number): Maximum results (1-100, default: 100)
  - offset (number): Skip results for pagination (default: 0)
  - filename (string, optional): Filter by filename (partial match)

Returns: Array of files with id, name, url, size, etc.`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListFiles, func(ctx context.Context, in contracts.ListMediaInput) (string, error) {
			return r.getJSON(ctx, "/mediastorage/v1/files", mediaQuery(in))
		}),

		bind(ToolSpec{
			Name:  Prefix + "list_all_files",
			Title: "List All Files",
			Description: `List files across all folders of media storage.

Args:
  - limit (number): Maximum results (1-100, default: 100)
  - offset (number): Skip results for pagination (default: 0)
  - filename (string, optional): Filter by filename (partial match)

Returns: Array of files`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListAllFiles, func(ctx context.Context, in contracts.ListMediaInput) (string, error) {
			return r.getJSON(ctx, "/mediastorage/v1/files/all", mediaQuery(in))
		}),

		bind(ToolSpec{
			Name:  Prefix + "count_files",
			Title: "Count Files",
			Description: `Count files in a media storage folder.

Args:
  - parent_folder_id (number, optional): Folder ID (omit for root)

Returns: Number of files`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.CountFiles, func(ctx context.Context, in contracts.CountMediaInput) (string, error) {
			return r.count(ctx, "/mediastorage/v1/files/count", parentQuery(in.ParentFolderID), "File count")
		}),

		bind(ToolSpec{
			Name:  Prefix + "count_all_files",
			Title: "Count All Files",
			Description: `Count all files in media storage.

Returns: Total number of files`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.Empty, func(ctx context.Context, _ struct{}) (string, error) {
			return r.count(ctx, "/mediastorage/v1/files/all/count", nil, "Total files")
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_file",
			Title: "Get File",
			Description: `Get a media storage file by ID.

Args:
  - file_id (number, required): File ID

Returns: File object with id, name, url, size, etc.`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.FileID, func(ctx context.Context, in contracts.FileIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/mediastorage/v1/files/%d", in.FileID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_file",
			Title: "Update File",
			Description: `Rename a file or move it to another folder.

Args:
  - file_id (number, required): File ID
  - name (string, required): New filename with extension
  - parent_folder_id (number, optional): Target folder (omit for root)

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateFile, func(ctx context.Context, in contracts.FileChangeInput) (string, error) {
			return r.update(ctx, http.MethodPut, fmt.Sprintf("/mediastorage/v1/files/%d", in.FileID), in.Entry, "File")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_file",
			Title: "Delete File",
			Description: `Delete a file from media storage permanently. This cannot be undone.

Args:
  - file_id (number, required): File ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.FileID, func(ctx context.Context, in contracts.FileIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/mediastorage/v1/files/%d", in.FileID), "File")
		}),

		r.uploadTool(),
	}
}

func (r *Registry) folderTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_folders",
			Title: "List Folders",
			Description: `List folders inside a media storage folder (the root folder when parent_folder_id is omitted).

Args:
  - parent_folder_id (number, optional): Folder ID
  - limit (number): Maximum results (1-100, default: 100)
  - offset (number): Skip results for pagination (default: 0)

Returns: Array of folders`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListFolders, func(ctx context.Context, in contracts.ListMediaInput) (string, error) {
			return r.getJSON(ctx, "/mediastorage/v1/folders", mediaQuery(in))
		}),

		bind(ToolSpec{
			Name:  Prefix + "list_all_folders",
			Title: "List All Folders",
			Description: `List every folder in media storage.

Args:
  - limit (number): Maximum results (1-100, default: 100)
  - offset (number): Skip results for pagination (default: 0)

Returns: Array of folders`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListAllFolders, func(ctx context.Context, in contracts.PageInput) (string, error) {
			return r.getJSON(ctx, "/mediastorage/v1/folders/all", pageQuery(in))
		}),

		bind(ToolSpec{
			Name:  Prefix + "count_folders",
			Title: "Count Folders",
			Description: `Count folders inside a media storage folder.

Args:
  - parent_folder_id (number, optional): Folder ID (omit for root)

Returns: Number of folders`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.CountFolders, func(ctx context.Context, in contracts.CountMediaInput) (string, error) {
			return r.count(ctx, "/mediastorage/v1/folders/count", parentQuery(in.ParentFolderID), "Folder count")
		}),

		bind(ToolSpec{
			Name:  Prefix + "count_all_folders",
			Title: "Count All Folders",
			Description: `Count all folders in media storage.

Returns: Total number of folders`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.Empty, func(ctx context.Context, _ struct{}) (string, error) {
			return r.count(ctx, "/mediastorage/v1/folders/all/count", nil, "Total folders")
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_folder",
			Title: "Get Folder",
			Description: `Get a media storage folder by ID.

Args:
  - folder_id (number, required): Folder ID

Returns: Folder object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.FolderID, func(ctx context.Context, in contracts.FolderIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/mediastorage/v1/folders/%d", in.FolderID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "create_folder",
			Title: "Create Folder",
			Description: `Create a folder in media storage.

Args:
  - name (string, required): Folder name
  - parent_folder_id (number, optional): Parent folder (omit for root)

Returns: ID of the newly created folder`,
			OpenWorld: true,
		}, contracts.FolderCreate, func(ctx context.Context, in contracts.Entry) (string, error) {
			return r.create(ctx, "/mediastorage/v1/folders", in, "Folder")
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_folder",
			Title: "Update Folder",
			Description: `Rename a folder or move it to another parent folder.

Args:
  - folder_id (number, required): Folder ID
  - name (string, required): New folder name
  - parent_folder_id (number, optional): Target folder (omit for root)

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateFolder, func(ctx context.Context, in contracts.FolderChangeInput) (string, error) {
			return r.update(ctx, http.MethodPut, fmt.Sprintf("/mediastorage/v1/folders/%d", in.FolderID), in.Entry, "Folder")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_folder",
			Title: "Delete Folder",
			Description: `Delete a media storage folder permanently. This cannot be undone.

Args:
  - folder_id (number, required): Folder ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.FolderID, func(ctx context.Context, in contracts.FolderIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/mediastorage/v1/folders/%d", in.FolderID), "Folder")
		}),
	}
}
