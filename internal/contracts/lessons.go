package contracts

import "mentortools-mcp/internal/schema"

var LessonID = ID("lesson_id", "Lesson ID")

var ListLessons = ModuleID.Merge(Pagination).Named("list_lessons")

// BlockContent does not tie the btn_* fields to block_type "btn"; the
// server decides which fields matter for a block.
var BlockContent = schema.Obj("content", "Content of the block",
	schema.Str("link", "Link (e.g. YouTube URL)"),
	schema.Str("file_id", "File ID from media storage"),
	schema.Str("payload", "Raw content (HTML or text)"),
	schema.Str("btn_url", "Button URL"),
	schema.Str("btn_font", "Button font"),
	schema.OneOf("btn_size", "Button size", ButtonSizes...),
	schema.Str("btn_text", "Button text"),
	schema.Str("btn_color", "Button color (hex)"),
	schema.OneOf("btn_target", "Button target", ButtonTargets...),
	schema.OneOf("btn_position", "Button position", ButtonPositions...),
	schema.Str("btn_text_color", "Button text color (hex)"),
	schema.Str("pdf_id", "PDF file ID"),
)

var ContentBlockCreate = schema.Obj("", "Content block",
	schema.OneOf("block_type", "Type of content block", ContentBlockTypes...).Require(),
	schema.Int("order", "Order in the lesson").Require(),
	schema.Bool("is_expanded", "Expanded by default").Default(true),
	BlockContent,
)

var AttachedFile = schema.Obj("", "Attached file",
	schema.Int("order", "File order").Require(),
	schema.Int("file_id", "File ID from media storage").Require(),
)

var LessonCreate = schema.New("lesson_create",
	title("Lesson title").Require(),
	schema.OneOf("lesson_type", "Type: 'lesson' or 'quiz'", LessonTypes...).Require(),
	schema.Bool("is_active", "Is active").Require(),
	schema.Bool("is_published", "Is published").Require(),
	schema.Bool("mandatory", "Is mandatory").Require(),
	schema.Int("submodule_id", "Submodule ID if part of submodule"),
	schema.Int("thread_id", "Community thread ID"),
	schema.Str("image_id", "Image ID"),
	schema.Str("payload", "Description or summary"),
	schema.Int("order", "Order in module"),
	schema.List("content_blocks", "Content blocks", ContentBlockCreate),
	schema.List("attached_files", "Attached files", AttachedFile),
)

// LessonPatch covers the scalar lesson fields; blocks and attachments are
// not patchable.
var LessonPatch = LessonCreate.Pick(
	"title", "submodule_id", "thread_id", "image_id", "order",
	"payload", "is_active", "is_published", "mandatory",
).Partial().Named("lesson_patch")

var (
	CreateLesson = ModuleID.Merge(LessonCreate).Named("create_lesson")
	UpdateLesson = LessonID.Merge(LessonPatch).Named("update_lesson")
)

type ListLessonsInput struct {
	ModuleID int64 `json:"module_id"`
	PageInput
}

type LessonIDInput struct {
	LessonID int64 `json:"lesson_id"`
}

type Content struct {
	Link         *string `json:"link,omitempty"`
	FileID       *string `json:"file_id,omitempty"`
	Payload      *string `json:"payload,omitempty"`
	BtnURL       *string `json:"btn_url,omitempty"`
	BtnFont      *string `json:"btn_font,omitempty"`
	BtnSize      *string `json:"btn_size,omitempty"`
	BtnText      *string `json:"btn_text,omitempty"`
	BtnColor     *string `json:"btn_color,omitempty"`
	BtnTarget    *string `json:"btn_target,omitempty"`
	BtnPosition  *string `json:"btn_position,omitempty"`
	BtnTextColor *string `json:"btn_text_color,omitempty"`
	PdfID        *string `json:"pdf_id,omitempty"`
}

type ContentBlock struct {
	BlockType  string   `json:"block_type"`
	Order      int64    `json:"order"`
	IsExpanded *bool    `json:"is_expanded,omitempty"`
	Content    *Content `json:"content,omitempty"`
}

type Attachment struct {
	Order  int64 `json:"order"`
	FileID int64 `json:"file_id"`
}

type Lesson struct {
	Title         *string        `json:"title,omitempty"`
	LessonType    *string        `json:"lesson_type,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
	IsPublished   *bool          `json:"is_published,omitempty"`
	Mandatory     *bool          `json:"mandatory,omitempty"`
	SubmoduleID   *int64         `json:"submodule_id,omitempty"`
	ThreadID      *int64         `json:"thread_id,omitempty"`
	ImageID       *string        `json:"image_id,omitempty"`
	Payload       *string        `json:"payload,omitempty"`
	Order         *int64         `json:"order,omitempty"`
	ContentBlocks []ContentBlock `json:"content_blocks,omitempty"`
	AttachedFiles []Attachment   `json:"attached_files,omitempty"`
}

type CreateLessonInput struct {
	ModuleID int64 `json:"module_id"`
	Lesson
}

type LessonChangeInput struct {
	LessonID int64 `json:"lesson_id"`
	Lesson
}
