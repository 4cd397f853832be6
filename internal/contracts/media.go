package contracts

import "mentortools-mcp/internal/schema"

var (
	FileID   = ID("file_id", "File ID in media storage")
	FolderID = ID("folder_id", "Folder ID")
)

func parentFolder(description string) schema.Field {
	return schema.Int("parent_folder_id", description).Positive()
}

func nameField(description string) schema.Field {
	return schema.Str("name", description).Length(1, MaxTitleLength).Require()
}

var filenameFilter = schema.Str("filename", "Filter by filename (partial match)")

var ListFiles = schema.New("list_files", parentFolder("Parent folder ID (omit for root)")).
	Merge(MediaPagination).
	Extend(filenameFilter)

var ListAllFiles = MediaPagination.Extend(filenameFilter).Named("list_all_files")

var CountFiles = ListFiles.Pick("parent_folder_id").Named("count_files")

var FileUpdate = schema.New("file_update",
	nameField("New filename with extension"),
	parentFolder("Move to folder (omit for root)"),
)

var UpdateFile = FileID.Merge(FileUpdate).Named("update_file")

var ListFolders = schema.New("list_folders", parentFolder("Parent folder ID (omit for root)")).
	Merge(MediaPagination)

var ListAllFolders = MediaPagination.Named("list_all_folders")

var CountFolders = ListFolders.Pick("parent_folder_id").Named("count_folders")

var FolderCreate = schema.New("create_folder",
	nameField("Folder name"),
	parentFolder("Parent folder ID (omit for root)"),
)

var FolderUpdate = schema.New("folder_update",
	nameField("New folder name"),
	parentFolder("Move to folder (omit for root)"),
)

var UpdateFolder = FolderID.Merge(FolderUpdate).Named("update_folder")

type ListMediaInput struct {
	ParentFolderID int64 `json:"parent_folder_id,omitempty"`
	PageInput
	Filename string `json:"filename,omitempty"`
}

type CountMediaInput struct {
	ParentFolderID int64 `json:"parent_folder_id,omitempty"`
}

type FileIDInput struct {
	FileID int64 `json:"file_id"`
}

type FolderIDInput struct {
	FolderID int64 `json:"folder_id"`
}

// Entry is the body of a file or folder create/update.
type Entry struct {
	Name           string `json:"name"`
	ParentFolderID *int64 `json:"parent_folder_id,omitempty"`
}

type FileChangeInput struct {
	FileID int64 `json:"file_id"`
	Entry
}

type FolderChangeInput struct {
	FolderID int64 `json:"folder_id"`
	Entry
}
