package tools

import (
	"context"
	"fmt"
	"net/http"

	"mentortools-mcp/internal/contracts"
)

func (r *Registry) lessonTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_lessons",
			Title: "List Lessons",
			Description: `List the lessons of a module.

Args:
  - module_id (number, required): Module ID
  - limit (number): Maximum results (1-100, default: 15)
  - offset (number): Skip results for pagination (default: 0)

Returns: Array of lessons`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListLessons, func(ctx context.Context, in contracts.ListLessonsInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/modules/%d/lessons", in.ModuleID), pageQuery(in.PageInput))
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_lesson",
			Title: "Get Lesson",
			Description: `Get a lesson by ID.

Args:
  - lesson_id (number, required): Lesson ID

Returns: Lesson object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.LessonID, func(ctx context.Context, in contracts.LessonIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/lessons/%d", in.LessonID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_lesson_info",
			Title: "Get Lesson Info",
			Description: `Get detailed lesson information.

Args:
  - lesson_id (number, required): Lesson ID

Returns: Detailed lesson object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.LessonID, func(ctx context.Context, in contracts.LessonIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/lessons/%d/info", in.LessonID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_lesson_content_blocks",
			Title: "Get Lesson Content Blocks",
			Description: `Get the content blocks (text, video, buttons, quizzes, ...) of a lesson.

Args:
  - lesson_id (number, required): Lesson ID

Returns: Array of content blocks`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.LessonID, func(ctx context.Context, in contracts.LessonIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/lessons/%d/content_blocks", in.LessonID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "create_lesson",
			Title: "Create Lesson",
			Description: `Create a lesson in a module, optionally with content blocks and attached files.

Args:
  - module_id (number, required): Parent module ID
  - title (string, required): Lesson title
  - lesson_type (string, required): 'lesson' or 'quiz'
  - is_active, is_published, mandatory (boolean, required)
  - submodule_id, thread_id, order (number, optional)
  - image_id, payload (string, optional)
  - content_blocks (array, optional): {block_type, order, is_expanded, content}
    block_type: text, html, btn, video, audio, pdf, quiz_text, quiz_video, quiz_audio, certificate
  - attached_files (array, optional): {order, file_id}

Returns: ID of the newly created lesson`,
			OpenWorld: true,
		}, contracts.CreateLesson, func(ctx context.Context, in contracts.CreateLessonInput) (string, error) {
			return r.create(ctx, fmt.Sprintf("/courses/v1/modules/%d/lessons", in.ModuleID), in.Lesson, "Lesson")
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_lesson",
			Title: "Update Lesson (Patch)",
			Description: `Update lesson information. Only provided fields are changed.

Args:
  - lesson_id (number, required): Lesson ID to update
  - title, submodule_id, thread_id, image_id, order, payload, is_active, is_published, mandatory (optional)

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateLesson, func(ctx context.Context, in contracts.LessonChangeInput) (string, error) {
			return r.update(ctx, http.MethodPatch, fmt.Sprintf("/courses/v1/lessons/%d", in.LessonID), in.Lesson, "Lesson")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_lesson",
			Title: "Delete Lesson",
			Description: `Delete a lesson permanently. This cannot be undone.

Args:
  - lesson_id (number, required): Lesson ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.LessonID, func(ctx context.Context, in contracts.LessonIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/courses/v1/lessons/%d", in.LessonID), "Lesson")
		}),
	}
}
